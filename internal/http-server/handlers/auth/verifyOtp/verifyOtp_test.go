package verifyOtp

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventRegistry/internal/http-server/handlers/auth/verifyOtp/mocks"
	"eventRegistry/internal/lib/logger/handlers/slogdiscard"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyOtpHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.OTPVerifier)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"email":"ada@example.com","otp":"482913"}`,
			mockSetup: func(m *mocks.OTPVerifier) {
				m.On("VerifyOTP", "ada@example.com", "482913").
					Return(&models.User{ID: 1, Email: "ada@example.com", IsVerified: true}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"is_verified":true`)
			},
		},
		{
			name:           "Non-numeric code",
			requestBody:    `{"email":"ada@example.com","otp":"abc123"}`,
			mockSetup:      func(m *mocks.OTPVerifier) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "otp")
			},
		},
		{
			name:           "Code too short",
			requestBody:    `{"email":"ada@example.com","otp":"123"}`,
			mockSetup:      func(m *mocks.OTPVerifier) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "otp")
			},
		},
		{
			name:        "User not found",
			requestBody: `{"email":"nobody@example.com","otp":"482913"}`,
			mockSetup: func(m *mocks.OTPVerifier) {
				m.On("VerifyOTP", "nobody@example.com", "482913").
					Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "user not found")
			},
		},
		{
			name:        "Wrong code",
			requestBody: `{"email":"ada@example.com","otp":"111111"}`,
			mockSetup: func(m *mocks.OTPVerifier) {
				m.On("VerifyOTP", "ada@example.com", "111111").
					Return(nil, storage.ErrInvalidOTP)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid otp")
			},
		},
		{
			name:        "No universal bypass code",
			requestBody: `{"email":"ada@example.com","otp":"123456"}`,
			mockSetup: func(m *mocks.OTPVerifier) {
				m.On("VerifyOTP", "ada@example.com", "123456").
					Return(nil, storage.ErrInvalidOTP)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid otp")
			},
		},
		{
			name:        "Expired code",
			requestBody: `{"email":"ada@example.com","otp":"482913"}`,
			mockSetup: func(m *mocks.OTPVerifier) {
				m.On("VerifyOTP", "ada@example.com", "482913").
					Return(nil, storage.ErrOTPExpired)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "otp has expired")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockVerifier := mocks.NewOTPVerifier(t)
			tc.mockSetup(mockVerifier)

			handler := New(logger, mockVerifier)

			req, err := http.NewRequest("POST", "/verify-otp", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}
