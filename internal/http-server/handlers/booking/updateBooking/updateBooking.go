package updateBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"hotelBooker/internal/booking"
	"hotelBooker/internal/http-server/middleware/mwauth"
	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	RoomID int `json:"room_id" validate:"required"`
}

type BookingResponse struct {
	response.Response
	BookingID int `json:"booking_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingMover
type BookingMover interface {
	MoveBooking(bookingID, userID, roomID int) (int, error)
}

func New(log *slog.Logger, bookings BookingMover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			log.Error("no authenticated user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.Int("user_id", userID))

		bookingIDStr := chi.URLParam(r, "bookingId")
		if bookingIDStr == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		bookingID, err := strconv.Atoi(bookingIDStr)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int("booking_id", bookingID))

		var req BookingRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		id, err := bookings.MoveBooking(bookingID, userID, req.RoomID)
		if err != nil {
			log.Error("failed to move booking", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrBookingNotFound):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("no booking found"))
			case errors.Is(err, booking.ErrNotOwner):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("booking belongs to another user"))
			case errors.Is(err, booking.ErrSameRoom):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking is already assigned to this room"))
			case errors.Is(err, booking.ErrRoomNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("room not found"))
			case errors.Is(err, booking.ErrRoomFull):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("room is at full capacity"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to move booking"))
			}
			return
		}

		log.Info("booking moved", slog.Int("room_id", req.RoomID))

		responseOK(w, r, id)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookingID int) {
	render.JSON(w, r, BookingResponse{
		Response:  response.OK(),
		BookingID: bookingID,
	})
}
