package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"hotelBooker/internal/config"
	"hotelBooker/internal/models"
	"hotelBooker/internal/storage"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sqlx.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) BookingByUser(userID int) (*models.BookingWithRoom, error) {
	query := `
		SELECT b.id, b.user_id,
		       r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1`

	var booking models.BookingWithRoom
	err := s.DB.QueryRow(query, userID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.Room.ID,
		&booking.Room.Name,
		&booking.Room.Capacity,
		&booking.Room.HotelID,
		&booking.Room.CreatedAt,
		&booking.Room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking for user: %w", err)
	}

	return &booking, nil
}

func (s *Storage) BookingByID(bookingID int) (*models.BookingWithRoom, error) {
	query := `
		SELECT b.id, b.user_id,
		       r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.id = $1`

	var booking models.BookingWithRoom
	err := s.DB.QueryRow(query, bookingID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.Room.ID,
		&booking.Room.Name,
		&booking.Room.Capacity,
		&booking.Room.HotelID,
		&booking.Room.CreatedAt,
		&booking.Room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking by id: %w", err)
	}

	return &booking, nil
}

func (s *Storage) RoomWithOccupancy(roomID int) (*models.RoomWithOccupancy, error) {
	query := `
		SELECT r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at,
		       COUNT(b.id) AS occupancy
		FROM rooms r
		LEFT JOIN bookings b ON b.room_id = r.id
		WHERE r.id = $1
		GROUP BY r.id`

	var room models.RoomWithOccupancy
	err := s.DB.Get(&room, query, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room with occupancy: %w", err)
	}

	return &room, nil
}

// ReserveRoom inserts a booking only while the room has spare capacity.
// The room row is locked for the duration of the transaction, so two
// concurrent reservations against the same room serialize and the loser
// sees the winner's booking in the occupancy count.
func (s *Storage) ReserveRoom(userID, roomID int) (int, error) {
	tx, err := s.DB.Beginx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	capacity, occupancy, err := lockRoom(tx, roomID)
	if err != nil {
		return 0, err
	}

	if occupancy >= capacity {
		return 0, storage.ErrRoomFull
	}

	insertQuery := `
		INSERT INTO bookings (user_id, room_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id`

	var id int
	if err = tx.QueryRow(insertQuery, userID, roomID).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

// MoveBooking reassigns a booking to another room under the same
// capacity discipline as ReserveRoom.
func (s *Storage) MoveBooking(bookingID, roomID int) (int, error) {
	tx, err := s.DB.Beginx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	capacity, occupancy, err := lockRoom(tx, roomID)
	if err != nil {
		return 0, err
	}

	if occupancy >= capacity {
		return 0, storage.ErrRoomFull
	}

	updateQuery := `
		UPDATE bookings
		SET room_id = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id`

	var id int
	if err = tx.QueryRow(updateQuery, roomID, bookingID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrBookingNotFound
		}
		return 0, fmt.Errorf("failed to move booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

func lockRoom(tx *sqlx.Tx, roomID int) (capacity, occupancy int, err error) {
	lockQuery := `
		SELECT capacity
		FROM rooms
		WHERE id = $1
		FOR UPDATE`

	if err = tx.QueryRow(lockQuery, roomID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, storage.ErrRoomNotFound
		}
		return 0, 0, fmt.Errorf("failed to lock room: %w", err)
	}

	countQuery := `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1`

	if err = tx.QueryRow(countQuery, roomID).Scan(&occupancy); err != nil {
		return 0, 0, fmt.Errorf("failed to count room occupancy: %w", err)
	}

	return capacity, occupancy, nil
}

func (s *Storage) EnrollmentByUser(userID int) (*models.Enrollment, error) {
	query := `
		SELECT id, user_id, created_at, updated_at
		FROM enrollments
		WHERE user_id = $1`

	var enrollment models.Enrollment
	err := s.DB.Get(&enrollment, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	return &enrollment, nil
}

func (s *Storage) TicketByEnrollment(enrollmentID int) (*models.Ticket, error) {
	query := `
		SELECT t.id, t.enrollment_id, t.status, t.created_at, t.updated_at,
		       tt.id, tt.name, tt.is_remote, tt.includes_hotel
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.enrollment_id = $1`

	var ticket models.Ticket
	err := s.DB.QueryRow(query, enrollmentID).Scan(
		&ticket.ID,
		&ticket.EnrollmentID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.TicketType.ID,
		&ticket.TicketType.Name,
		&ticket.TicketType.IsRemote,
		&ticket.TicketType.IncludesHotel,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return &ticket, nil
}
