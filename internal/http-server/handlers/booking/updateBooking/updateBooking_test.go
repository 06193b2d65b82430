package updateBooking

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelBooker/internal/booking"
	"hotelBooker/internal/http-server/handlers/booking/updateBooking/mocks"
	"hotelBooker/internal/http-server/middleware/mwauth"
	"hotelBooker/internal/lib/logger/handlers/slogdiscard"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		bookingID      string
		userID         int
		authenticated  bool
		requestBody    string
		mockSetup      func(mock *mocks.BookingMover)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:          "Success",
			bookingID:     "10",
			userID:        1,
			authenticated: true,
			requestBody:   `{"room_id": 7}`,
			mockSetup: func(mock *mocks.BookingMover) {
				mock.On("MoveBooking", 10, 1, 7).Return(10, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","booking_id":10}`,
		},
		{
			name:           "Missing booking ID",
			bookingID:      "",
			userID:         1,
			authenticated:  true,
			requestBody:    `{"room_id": 7}`,
			mockSetup:      func(mock *mocks.BookingMover) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"booking id is required"}`,
		},
		{
			name:           "Invalid booking ID format",
			bookingID:      "invalid",
			userID:         1,
			authenticated:  true,
			requestBody:    `{"room_id": 7}`,
			mockSetup:      func(mock *mocks.BookingMover) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid booking id format"}`,
		},
		{
			name:           "Invalid JSON",
			bookingID:      "10",
			userID:         1,
			authenticated:  true,
			requestBody:    `invalid json`,
			mockSetup:      func(mock *mocks.BookingMover) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing room_id",
			bookingID:      "10",
			userID:         1,
			authenticated:  true,
			requestBody:    `{}`,
			mockSetup:      func(mock *mocks.BookingMover) {},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "RoomID")
			},
		},
		{
			name:          "No booking found",
			bookingID:     "10",
			userID:        1,
			authenticated: true,
			requestBody:   `{"room_id": 7}`,
			mockSetup: func(mock *mocks.BookingMover) {
				mock.On("MoveBooking", 10, 1, 7).Return(0, booking.ErrBookingNotFound)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"no booking found"}`,
		},
		{
			name:          "Booking owned by another user",
			bookingID:     "10",
			userID:        2,
			authenticated: true,
			requestBody:   `{"room_id": 7}`,
			mockSetup: func(mock *mocks.BookingMover) {
				mock.On("MoveBooking", 10, 2, 7).Return(0, booking.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"booking belongs to another user"}`,
		},
		{
			name:          "Moving into the current room",
			bookingID:     "10",
			userID:        1,
			authenticated: true,
			requestBody:   `{"room_id": 5}`,
			mockSetup: func(mock *mocks.BookingMover) {
				mock.On("MoveBooking", 10, 1, 5).Return(0, booking.ErrSameRoom)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking is already assigned to this room"}`,
		},
		{
			name:          "Target room not found",
			bookingID:     "10",
			userID:        1,
			authenticated: true,
			requestBody:   `{"room_id": 999}`,
			mockSetup: func(mock *mocks.BookingMover) {
				mock.On("MoveBooking", 10, 1, 999).Return(0, booking.ErrRoomNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"room not found"}`,
		},
		{
			name:          "Target room at full capacity",
			bookingID:     "10",
			userID:        1,
			authenticated: true,
			requestBody:   `{"room_id": 7}`,
			mockSetup: func(mock *mocks.BookingMover) {
				mock.On("MoveBooking", 10, 1, 7).Return(0, booking.ErrRoomFull)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"room is at full capacity"}`,
		},
		{
			name:          "Internal server error",
			bookingID:     "10",
			userID:        1,
			authenticated: true,
			requestBody:   `{"room_id": 7}`,
			mockSetup: func(mock *mocks.BookingMover) {
				mock.On("MoveBooking", 10, 1, 7).Return(0, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to move booking"}`,
		},
		{
			name:           "No authenticated user",
			bookingID:      "10",
			authenticated:  false,
			requestBody:    `{"room_id": 7}`,
			mockSetup:      func(mock *mocks.BookingMover) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockMover := mocks.NewBookingMover(t)
			tc.mockSetup(mockMover)

			handler := New(logger, mockMover)

			req, err := http.NewRequest("PUT", "/booking/"+tc.bookingID, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			if tc.authenticated {
				req = req.WithContext(mwauth.ContextWithUserID(req.Context(), tc.userID))
			}

			rctx := chi.NewRouteContext()
			if tc.bookingID != "" {
				rctx.URLParams.Add("bookingId", tc.bookingID)
			}
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockMover.AssertExpectations(t)
		})
	}
}
