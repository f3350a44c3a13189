package calendar

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetCalendar)
	r.Post("/view", h.ApplyInput)
	r.Post("/search", h.Search)
	r.Post("/events", h.CreateEvent)
	r.Post("/events/{id}/move", h.MoveEvent)

	return r
}
