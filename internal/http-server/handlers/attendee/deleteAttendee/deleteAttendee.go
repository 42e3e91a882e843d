package deleteAttendee

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeeDeleter
type AttendeeDeleter interface {
	DeleteAttendee(eventID, attendeeID int64) error
}

func New(log *slog.Logger, attendees AttendeeDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendee.deleteAttendee.New"

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

		if err = attendees.DeleteAttendee(eventID, attendeeID); err != nil {
			if errors.Is(err, storage.ErrAttendeeNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("attendee not found"))
				return
			}

			log.Error("failed to delete attendee", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete attendee"))
			return
		}

		log.Info("attendee deleted",
			slog.Int64("event_id", eventID),
			slog.Int64("attendee_id", attendeeID),
		)

		render.JSON(w, r, response.Response{
			Status:  response.StatusOK,
			Message: "attendee deleted successfully",
		})
	}
}
