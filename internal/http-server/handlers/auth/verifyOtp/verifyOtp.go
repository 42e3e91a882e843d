package verifyOtp

import (
	"errors"
	"log/slog"
	"net/http"

	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"
	"eventRegistry/internal/registration"
	"eventRegistry/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type VerifyResponse struct {
	response.Response
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OTPVerifier
type OTPVerifier interface {
	VerifyOTP(email, code string) (*models.User, error)
}

// New verifies a user's one-time code. Only the stored code within its
// expiry window is accepted.
func New(log *slog.Logger, users OTPVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.verifyOtp.New"

		log = log.With(slog.String("op", op))

		var req VerifyRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		user, err := users.VerifyOTP(registration.NormalizeEmail(req.Email), req.OTP)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
			case errors.Is(err, storage.ErrInvalidOTP):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid otp"))
			case errors.Is(err, storage.ErrOTPExpired):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("otp has expired"))
			default:
				log.Error("failed to verify otp", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to verify otp"))
			}
			return
		}

		log.Info("otp verified", slog.Int64("user_id", user.ID))

		render.JSON(w, r, VerifyResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
