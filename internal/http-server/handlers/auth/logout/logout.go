package logout

import (
	"errors"
	"log/slog"
	"net/http"

	"eventRegistry/internal/http-server/middleware/auth"
	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/storage"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionRevoker
type SessionRevoker interface {
	DeleteSession(token string) error
}

// New revokes the session the request was authenticated with.
func New(log *slog.Logger, sessions SessionRevoker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		log = log.With(slog.String("op", op))

		token, ok := auth.TokenFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("missing authorization header"))
			return
		}

		if err := sessions.DeleteSession(token); err != nil {
			if errors.Is(err, storage.ErrSessionNotFound) {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			log.Error("failed to delete session", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log out"))
			return
		}

		log.Info("user logged out")

		render.JSON(w, r, response.Response{
			Status:  response.StatusOK,
			Message: "logged out successfully",
		})
	}
}
