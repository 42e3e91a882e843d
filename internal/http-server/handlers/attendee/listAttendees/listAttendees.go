package listAttendees

import (
	"log/slog"
	"net/http"
	"strconv"

	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// AttendeesResponse is a page envelope over an event's attendees.
type AttendeesResponse struct {
	response.Response
	Data        []models.Attendee `json:"data"`
	Total       int               `json:"total"`
	CurrentPage int               `json:"current_page"`
	PerPage     int               `json:"per_page"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeesLister
type AttendeesLister interface {
	ListAttendees(eventID int64, page, perPage int) ([]models.Attendee, int, error)
}

func New(log *slog.Logger, attendees AttendeesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendee.listAttendees.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.ParseInt(chi.URLParam(r, "event_id"), 10, 64)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		page := queryInt(r, "page", 1)
		if page < 1 {
			page = 1
		}

		perPage := queryInt(r, "per_page", defaultPerPage)
		if perPage < 1 {
			perPage = defaultPerPage
		}
		if perPage > maxPerPage {
			perPage = maxPerPage
		}

		data, total, err := attendees.ListAttendees(eventID, page, perPage)
		if err != nil {
			log.Error("failed to get attendees", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get attendees"))
			return
		}

		log.Info("attendees retrieved",
			slog.Int64("event_id", eventID),
			slog.Int("count", len(data)),
			slog.Int("total", total),
		)

		if data == nil {
			data = []models.Attendee{}
		}

		render.JSON(w, r, AttendeesResponse{
			Response:    response.OK(),
			Data:        data,
			Total:       total,
			CurrentPage: page,
			PerPage:     perPage,
		})
	}
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return n
}
