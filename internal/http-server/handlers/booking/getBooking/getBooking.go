package getBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"hotelBooker/internal/booking"
	"hotelBooker/internal/http-server/middleware/mwauth"
	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"

	"github.com/go-chi/render"
)

type ReservationResponse struct {
	response.Response
	Booking *models.BookingWithRoom `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationProvider
type ReservationProvider interface {
	Reservation(userID int) (*models.BookingWithRoom, error)
}

func New(log *slog.Logger, reservations ReservationProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			log.Error("no authenticated user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.Int("user_id", userID))

		reservation, err := reservations.Reservation(userID)
		if err != nil {
			if errors.Is(err, booking.ErrBookingNotFound) {
				log.Info("user has no booking")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("no booking found"))
				return
			}

			log.Error("failed to get reservation", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get reservation"))
			return
		}

		log.Info("reservation retrieved", slog.Int("booking_id", reservation.ID))

		responseOK(w, r, reservation)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, reservation *models.BookingWithRoom) {
	render.JSON(w, r, ReservationResponse{
		Response: response.OK(),
		Booking:  reservation,
	})
}
