package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListEvents)
	r.Post("/", h.CreateEvent)
	r.Get("/search", h.SearchEvents)
	r.Get("/types", h.ListEventTypes)
	r.Get("/export.ics", h.ExportICS)
	r.Get("/{id}", h.GetEvent)
	r.Patch("/{id}/date", h.UpdateEventDate)
	r.Delete("/{id}", h.DeleteEvent)

	return r
}
