package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventRegistry/internal/http-server/middleware/auth/mocks"
	"eventRegistry/internal/lib/logger/handlers/slogdiscard"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		authHeader     string
		mockSetup      func(mock *mocks.UserProvider)
		expectedStatus int
		expectNext     bool
	}{
		{
			name:       "Success",
			authHeader: "Bearer token-123",
			mockSetup: func(mock *mocks.UserProvider) {
				mock.On("UserByToken", "token-123").
					Return(&models.User{ID: 7, Email: "gopher@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "Missing header",
			authHeader:     "",
			mockSetup:      func(mock *mocks.UserProvider) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Not a bearer token",
			authHeader:     "Basic abc",
			mockSetup:      func(mock *mocks.UserProvider) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "Unknown token",
			authHeader: "Bearer nope",
			mockSetup: func(mock *mocks.UserProvider) {
				mock.On("UserByToken", "nope").Return(nil, storage.ErrSessionNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "Storage failure",
			authHeader: "Bearer token-123",
			mockSetup: func(mock *mocks.UserProvider) {
				mock.On("UserByToken", "token-123").Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewUserProvider(t)
			tc.mockSetup(mockProvider)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				user, ok := UserFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, int64(7), user.ID)

				token, ok := TokenFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, "token-123", token)
			})

			handler := New(logger, mockProvider)(next)

			req := httptest.NewRequest("GET", "/me", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.expectNext, nextCalled)
		})
	}
}
