package models

import "time"

type Booking struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	RoomID    int       `db:"room_id" json:"room_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// BookingWithRoom is the reservation projection returned by the read
// path: the booking id plus the full room it points at.
type BookingWithRoom struct {
	ID     int  `json:"id"`
	UserID int  `json:"-"`
	Room   Room `json:"room"`
}
