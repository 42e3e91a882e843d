package logout

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventRegistry/internal/http-server/handlers/auth/logout/mocks"
	"eventRegistry/internal/http-server/middleware/auth"
	authmocks "eventRegistry/internal/http-server/middleware/auth/mocks"
	"eventRegistry/internal/lib/logger/handlers/slogdiscard"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogoutHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		authHeader     string
		mockSetup      func(provider *authmocks.UserProvider, revoker *mocks.SessionRevoker)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "Success",
			authHeader: "Bearer token-123",
			mockSetup: func(provider *authmocks.UserProvider, revoker *mocks.SessionRevoker) {
				provider.On("UserByToken", "token-123").
					Return(&models.User{ID: 1}, nil)
				revoker.On("DeleteSession", "token-123").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"logged out successfully"}`,
		},
		{
			name:           "No token",
			authHeader:     "",
			mockSetup:      func(provider *authmocks.UserProvider, revoker *mocks.SessionRevoker) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","message":"missing authorization header"}`,
		},
		{
			name:       "Session already revoked",
			authHeader: "Bearer token-123",
			mockSetup: func(provider *authmocks.UserProvider, revoker *mocks.SessionRevoker) {
				provider.On("UserByToken", "token-123").
					Return(&models.User{ID: 1}, nil)
				revoker.On("DeleteSession", "token-123").
					Return(storage.ErrSessionNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","message":"invalid or expired token"}`,
		},
		{
			name:       "Storage failure",
			authHeader: "Bearer token-123",
			mockSetup: func(provider *authmocks.UserProvider, revoker *mocks.SessionRevoker) {
				provider.On("UserByToken", "token-123").
					Return(&models.User{ID: 1}, nil)
				revoker.On("DeleteSession", "token-123").Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","message":"failed to log out"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := authmocks.NewUserProvider(t)
			mockRevoker := mocks.NewSessionRevoker(t)
			tc.mockSetup(mockProvider, mockRevoker)

			handler := auth.New(logger, mockProvider)(New(logger, mockRevoker))

			req, err := http.NewRequest("POST", "/logout", nil)
			require.NoError(t, err)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
