package updateAttendee

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

// AttendeeRequest carries a partial edit of an attendee.
type AttendeeRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type AttendeeResponse struct {
	response.Response
	Attendee *models.Attendee `json:"attendee"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeeUpdater
type AttendeeUpdater interface {
	GetAttendee(eventID, attendeeID int64) (*models.Attendee, error)
	UpdateAttendee(attendee *models.Attendee) error
}

func New(log *slog.Logger, attendees AttendeeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendee.updateAttendee.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.ParseInt(chi.URLParam(r, "event_id"), 10, 64)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		attendeeID, err := strconv.ParseInt(chi.URLParam(r, "attendee_id"), 10, 64)
		if err != nil {
			log.Error("invalid attendee id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid attendee id format"))
			return
		}

		log = log.With(
			slog.Int64("event_id", eventID),
			slog.Int64("attendee_id", attendeeID),
		)

		var req AttendeeRequest

		err = render.DecodeJSON(r.Body, &req)
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

		attendee, err := attendees.GetAttendee(eventID, attendeeID)
		if err != nil {
			if errors.Is(err, storage.ErrAttendeeNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("attendee not found"))
				return
			}

			log.Error("failed to get attendee", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update attendee"))
			return
		}

		if req.Name != nil {
			attendee.Name = *req.Name
		}
		if req.Email != nil {
			attendee.Email = *req.Email
		}

		if err = attendees.UpdateAttendee(attendee); err != nil {
			switch {
			case errors.Is(err, storage.ErrAttendeeNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("attendee not found"))
			case errors.Is(err, storage.ErrDuplicateEmail):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("this email is already registered for this event"))
			default:
				log.Error("failed to update attendee", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update attendee"))
			}
			return
		}

		log.Info("attendee updated")

		render.JSON(w, r, AttendeeResponse{
			Response: response.OK(),
			Attendee: attendee,
		})
	}
}
