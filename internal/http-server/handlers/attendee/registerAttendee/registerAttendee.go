package registerAttendee

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type RegisterRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email"`
}

type RegisterResponse struct {
	response.Response
	Attendee *models.Attendee `json:"attendee"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeeRegistrar
type AttendeeRegistrar interface {
	RegisterAttendee(eventID int64, name, email string) (*models.Attendee, error)
}

// New registers an attendee for an event. A duplicate email is reported as a
// conflict even when the event is also full.
func New(log *slog.Logger, registrar AttendeeRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendee.registerAttendee.New"

		log = log.With(slog.String("op", op))

		eventIDStr := chi.URLParam(r, "event_id")
		if eventIDStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.ParseInt(eventIDStr, 10, 64)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int64("event_id", eventID))

		var req RegisterRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		attendee, err := registrar.RegisterAttendee(eventID, req.Name, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrDuplicateEmail):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("this email is already registered for this event"))
			case errors.Is(err, storage.ErrCapacityReached):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("event capacity has been reached, registration closed"))
			default:
				log.Error("failed to register attendee", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to register attendee"))
			}
			return
		}

		log.Info("attendee registered",
			slog.Int64("attendee_id", attendee.ID),
			slog.String("email", attendee.Email),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, RegisterResponse{
			Response: response.OK(),
			Attendee: attendee,
		})
	}
}
