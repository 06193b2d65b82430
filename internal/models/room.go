package models

import "time"

type Room struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Capacity  int       `db:"capacity" json:"capacity"`
	HotelID   int       `db:"hotel_id" json:"hotel_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Hotel struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Image     string    `db:"image" json:"image"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// RoomWithOccupancy carries a room together with its current number of
// bookings, as reported by the storage layer in a single query.
type RoomWithOccupancy struct {
	Room
	Occupancy int `db:"occupancy" json:"occupancy"`
}

// IsFull treats a room at exactly its capacity as full.
func (r *RoomWithOccupancy) IsFull() bool {
	return r.Occupancy >= r.Capacity
}
