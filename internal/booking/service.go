// Package booking holds the reservation decision logic: who may book,
// which rooms can still take a guest, and how an existing booking moves
// between rooms. Handlers translate its errors into HTTP statuses.
package booking

import (
	"errors"
	"fmt"
	"log/slog"

	"hotelBooker/internal/models"
	"hotelBooker/internal/storage"
)

var (
	// ErrNotQualified covers every eligibility failure: no enrollment,
	// no ticket, an unpaid ticket, a remote ticket type, or a ticket
	// type without hotel accommodation. The concrete cause is kept in
	// the wrapped message.
	ErrNotQualified = errors.New("user is not qualified for booking")

	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomFull        = errors.New("room is at full capacity")
	ErrBookingNotFound = errors.New("no booking found")
	ErrNotOwner        = errors.New("booking belongs to another user")
	ErrSameRoom        = errors.New("booking is already assigned to this room")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingStore
type BookingStore interface {
	BookingByUser(userID int) (*models.BookingWithRoom, error)
	BookingByID(bookingID int) (*models.BookingWithRoom, error)
	RoomWithOccupancy(roomID int) (*models.RoomWithOccupancy, error)
	ReserveRoom(userID, roomID int) (int, error)
	MoveBooking(bookingID, roomID int) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketStore
type TicketStore interface {
	EnrollmentByUser(userID int) (*models.Enrollment, error)
	TicketByEnrollment(enrollmentID int) (*models.Ticket, error)
}

type Service struct {
	log      *slog.Logger
	bookings BookingStore
	tickets  TicketStore
}

func New(log *slog.Logger, bookings BookingStore, tickets TicketStore) *Service {
	return &Service{
		log:      log,
		bookings: bookings,
		tickets:  tickets,
	}
}

// CheckEligibility reports whether the user holds an enrollment and a
// paid, on-site, hotel-included ticket. Read-only.
func (s *Service) CheckEligibility(userID int) error {
	const op = "booking.CheckEligibility"

	enrollment, err := s.tickets.EnrollmentByUser(userID)
	if err != nil {
		if errors.Is(err, storage.ErrEnrollmentNotFound) {
			return fmt.Errorf("%w: user %d has no enrollment", ErrNotQualified, userID)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	ticket, err := s.tickets.TicketByEnrollment(enrollment.ID)
	if err != nil {
		if errors.Is(err, storage.ErrTicketNotFound) {
			return fmt.Errorf("%w: enrollment %d has no ticket", ErrNotQualified, enrollment.ID)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	switch {
	case ticket.Status != models.TicketStatusPaid:
		return fmt.Errorf("%w: ticket %d is not paid", ErrNotQualified, ticket.ID)
	case ticket.TicketType.IsRemote:
		return fmt.Errorf("%w: ticket type %q is remote", ErrNotQualified, ticket.TicketType.Name)
	case !ticket.TicketType.IncludesHotel:
		return fmt.Errorf("%w: ticket type %q does not include hotel", ErrNotQualified, ticket.TicketType.Name)
	}

	return nil
}

// CreateBooking reserves a room for the user. The occupancy read here
// is a fast-fail; the storage reserve re-verifies capacity atomically,
// so a concurrent loser still comes back as ErrRoomFull.
func (s *Service) CreateBooking(userID, roomID int) (int, error) {
	const op = "booking.CreateBooking"

	if err := s.CheckEligibility(userID); err != nil {
		return 0, err
	}

	room, err := s.bookings.RoomWithOccupancy(roomID)
	if err != nil {
		if errors.Is(err, storage.ErrRoomNotFound) {
			return 0, ErrRoomNotFound
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if room.IsFull() {
		return 0, fmt.Errorf("%w: room %d", ErrRoomFull, roomID)
	}

	id, err := s.bookings.ReserveRoom(userID, roomID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrRoomFull):
			return 0, fmt.Errorf("%w: room %d", ErrRoomFull, roomID)
		case errors.Is(err, storage.ErrRoomNotFound):
			return 0, ErrRoomNotFound
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("booking created",
		slog.Int("booking_id", id),
		slog.Int("user_id", userID),
		slog.Int("room_id", roomID),
	)

	return id, nil
}

// MoveBooking reassigns an existing booking to another room. The
// booking must belong to the caller, and moving into the room the
// booking already occupies is rejected.
func (s *Service) MoveBooking(bookingID, userID, roomID int) (int, error) {
	const op = "booking.MoveBooking"

	booking, err := s.bookings.BookingByID(bookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return 0, ErrBookingNotFound
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if booking.UserID != userID {
		return 0, fmt.Errorf("%w: booking %d is not owned by user %d", ErrNotOwner, bookingID, userID)
	}

	if booking.Room.ID == roomID {
		return 0, fmt.Errorf("%w: room %d", ErrSameRoom, roomID)
	}

	room, err := s.bookings.RoomWithOccupancy(roomID)
	if err != nil {
		if errors.Is(err, storage.ErrRoomNotFound) {
			return 0, ErrRoomNotFound
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if room.IsFull() {
		return 0, fmt.Errorf("%w: room %d", ErrRoomFull, roomID)
	}

	id, err := s.bookings.MoveBooking(bookingID, roomID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrRoomFull):
			return 0, fmt.Errorf("%w: room %d", ErrRoomFull, roomID)
		case errors.Is(err, storage.ErrBookingNotFound):
			return 0, ErrBookingNotFound
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("booking moved",
		slog.Int("booking_id", id),
		slog.Int("user_id", userID),
		slog.Int("room_id", roomID),
	)

	return id, nil
}

// Reservation returns the user's current booking with its room.
func (s *Service) Reservation(userID int) (*models.BookingWithRoom, error) {
	const op = "booking.Reservation"

	booking, err := s.bookings.BookingByUser(userID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return booking, nil
}
