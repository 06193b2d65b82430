package createBooking

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelBooker/internal/booking"
	"hotelBooker/internal/http-server/handlers/booking/createBooking/mocks"
	"hotelBooker/internal/http-server/middleware/mwauth"
	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		userID         int
		authenticated  bool
		requestBody    string
		mockSetup      func(mock *mocks.BookingCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:          "Success",
			userID:        1,
			authenticated: true,
			requestBody:   `{"room_id": 5}`,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", 1, 5).Return(42, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","booking_id":42}`,
		},
		{
			name:           "Missing room_id",
			userID:         1,
			authenticated:  true,
			requestBody:    `{}`,
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "RoomID")
			},
		},
		{
			name:           "Invalid JSON",
			userID:         1,
			authenticated:  true,
			requestBody:    `invalid json`,
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:          "Not qualified",
			userID:        1,
			authenticated: true,
			requestBody:   `{"room_id": 5}`,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", 1, 5).Return(0, booking.ErrNotQualified)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"user is not qualified for booking"}`,
		},
		{
			name:          "Room at full capacity",
			userID:        1,
			authenticated: true,
			requestBody:   `{"room_id": 5}`,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", 1, 5).Return(0, booking.ErrRoomFull)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"room is at full capacity"}`,
		},
		{
			name:          "Room not found",
			userID:        1,
			authenticated: true,
			requestBody:   `{"room_id": 999}`,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", 1, 999).Return(0, booking.ErrRoomNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"room not found"}`,
		},
		{
			name:          "Internal server error",
			userID:        1,
			authenticated: true,
			requestBody:   `{"room_id": 5}`,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", 1, 5).Return(0, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create booking"}`,
		},
		{
			name:           "No authenticated user",
			authenticated:  false,
			requestBody:    `{"room_id": 5}`,
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewBookingCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/booking", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			if tc.authenticated {
				req = req.WithContext(mwauth.ContextWithUserID(req.Context(), tc.userID))
			}

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockCreator.AssertExpectations(t)
		})
	}
}

func TestMissingRoomIDNeverCreates(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockCreator := mocks.NewBookingCreator(t)
	handler := New(logger, mockCreator)

	req, err := http.NewRequest("POST", "/booking", bytes.NewBufferString(`{}`))
	require.NoError(t, err)
	req = req.WithContext(mwauth.ContextWithUserID(req.Context(), 1))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	mockCreator.AssertNotCalled(t, "CreateBooking")
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, 42)

	assert.Equal(t, http.StatusOK, rr.Code)

	expectedResponse := response.OK()
	var actualResponse BookingResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actualResponse)
	require.NoError(t, err)

	assert.Equal(t, expectedResponse.Status, actualResponse.Status)
	assert.Equal(t, expectedResponse.Error, actualResponse.Error)
	assert.Equal(t, 42, actualResponse.BookingID)
}
