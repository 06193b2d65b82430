package models

import "time"

const (
	TicketStatusPaid     = "PAID"
	TicketStatusReserved = "RESERVED"
)

type Ticket struct {
	ID           int        `db:"id" json:"id"`
	EnrollmentID int        `db:"enrollment_id" json:"enrollment_id"`
	Status       string     `db:"status" json:"status"`
	TicketType   TicketType `json:"ticket_type"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

type TicketType struct {
	ID            int    `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	IsRemote      bool   `db:"is_remote" json:"is_remote"`
	IncludesHotel bool   `db:"includes_hotel" json:"includes_hotel"`
}
