package registerUser

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventRegistry/internal/http-server/handlers/auth/registerUser/mocks"
	"eventRegistry/internal/lib/logger/handlers/slogdiscard"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type captureSender struct {
	email string
	code  string
}

func (s *captureSender) SendOTP(email, code string) error {
	s.email = email
	s.code = code
	return nil
}

func TestRegisterUserHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	validBody := `{"first_name":"Ada","last_name":"Lovelace","email":"Ada@Example.com","password":"secret1"}`

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.UserCreator)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(m *mocks.UserCreator) {
				m.On("CreateUser", "Ada", "Lovelace", "ada@example.com",
					mock.AnythingOfType("string"),
					mock.MatchedBy(func(otp string) bool { return len(otp) == 6 }),
					mock.AnythingOfType("time.Time")).
					Return(&models.User{
						ID:        1,
						FirstName: "Ada",
						LastName:  "Lovelace",
						Email:     "ada@example.com",
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"email":"ada@example.com"`)
			},
		},
		{
			name:           "Missing fields",
			requestBody:    `{"email":"ada@example.com"}`,
			mockSetup:      func(m *mocks.UserCreator) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field first_name is a required field")
				assert.Contains(t, body, "field password is a required field")
			},
		},
		{
			name: "Password too short",
			requestBody: `{"first_name":"Ada","last_name":"Lovelace",` +
				`"email":"ada@example.com","password":"short"}`,
			mockSetup:      func(m *mocks.UserCreator) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field password must be at least 6")
			},
		},
		{
			name:        "Duplicate email",
			requestBody: validBody,
			mockSetup: func(m *mocks.UserCreator) {
				m.On("CreateUser", "Ada", "Lovelace", "ada@example.com",
					mock.AnythingOfType("string"), mock.AnythingOfType("string"),
					mock.AnythingOfType("time.Time")).
					Return(nil, storage.ErrUserExists)
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "this email is already registered")
			},
		},
		{
			name:        "Storage failure",
			requestBody: validBody,
			mockSetup: func(m *mocks.UserCreator) {
				m.On("CreateUser", "Ada", "Lovelace", "ada@example.com",
					mock.AnythingOfType("string"), mock.AnythingOfType("string"),
					mock.AnythingOfType("time.Time")).
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to register user")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewUserCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator, &captureSender{}, 10*time.Minute)

			req, err := http.NewRequest("POST", "/register", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}

// The code must reach the sender and must not leak into the response body.
func TestOTPStaysOutOfResponse(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	sender := &captureSender{}

	mockCreator := mocks.NewUserCreator(t)

	var hashed string
	mockCreator.On("CreateUser", "Ada", "Lovelace", "ada@example.com",
		mock.MatchedBy(func(h string) bool { hashed = h; return true }),
		mock.MatchedBy(func(otp string) bool { return len(otp) == 6 }),
		mock.AnythingOfType("time.Time")).
		Return(&models.User{ID: 1, Email: "ada@example.com"}, nil)

	handler := New(logger, mockCreator, sender, 10*time.Minute)

	body := `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"secret1"}`
	req := httptest.NewRequest("POST", "/register", bytes.NewBufferString(body))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	assert.Equal(t, "ada@example.com", sender.email)
	require.Len(t, sender.code, 6)
	assert.NotContains(t, rr.Body.String(), sender.code)

	// the stored hash verifies the original password and is not the password itself
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("secret1")))
	assert.NotContains(t, rr.Body.String(), "secret1")
}
