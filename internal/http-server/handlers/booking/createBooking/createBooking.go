package createBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"hotelBooker/internal/booking"
	"hotelBooker/internal/http-server/middleware/mwauth"
	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(userID, roomID int) (int, error)
}

func New(log *slog.Logger, bookings BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			log.Error("no authenticated user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.Int("user_id", userID))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		// A missing room id is a business-rule rejection here, not a
		// plain 400.
		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		bookingID, err := bookings.CreateBooking(userID, req.RoomID)
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrNotQualified):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("user is not qualified for booking"))
			case errors.Is(err, booking.ErrRoomFull):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("room is at full capacity"))
			case errors.Is(err, booking.ErrRoomNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("room not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created", slog.Int("booking_id", bookingID))

		responseOK(w, r, bookingID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookingID int) {
	render.JSON(w, r, BookingResponse{
		Response:  response.OK(),
		BookingID: bookingID,
	})
}
