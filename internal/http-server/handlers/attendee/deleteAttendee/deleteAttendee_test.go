package deleteAttendee

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventRegistry/internal/http-server/handlers/attendee/deleteAttendee/mocks"
	"eventRegistry/internal/lib/logger/handlers/slogdiscard"
	"eventRegistry/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteAttendeeHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(mock *mocks.AttendeeDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			url:  "/events/1/attendees/10",
			mockSetup: func(m *mocks.AttendeeDeleter) {
				m.On("DeleteAttendee", int64(1), int64(10)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"attendee deleted successfully"}`,
		},
		{
			name:           "Invalid event id",
			url:            "/events/abc/attendees/10",
			mockSetup:      func(m *mocks.AttendeeDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"invalid event id format"}`,
		},
		{
			name: "Not found",
			url:  "/events/1/attendees/99",
			mockSetup: func(m *mocks.AttendeeDeleter) {
				m.On("DeleteAttendee", int64(1), int64(99)).
					Return(storage.ErrAttendeeNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","message":"attendee not found"}`,
		},
		{
			name: "Storage failure",
			url:  "/events/1/attendees/10",
			mockSetup: func(m *mocks.AttendeeDeleter) {
				m.On("DeleteAttendee", int64(1), int64(10)).Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","message":"failed to delete attendee"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewAttendeeDeleter(t)
			tc.mockSetup(mockDeleter)

			handler := New(logger, mockDeleter)

			req, err := http.NewRequest("DELETE", tc.url, nil)
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Delete("/events/{event_id}/attendees/{attendee_id}", handler)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
