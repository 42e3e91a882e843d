package me

import (
	"log/slog"
	"net/http"

	"eventRegistry/internal/http-server/middleware/auth"
	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/models"

	"github.com/go-chi/render"
)

type MeResponse struct {
	response.Response
	User *models.User `json:"user"`
}

// New returns the user behind the request's session token.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.me.New"

		log = log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("missing authorization header"))
			return
		}

		log.Info("current user requested", slog.Int64("user_id", user.ID))

		render.JSON(w, r, MeResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
