package rsvp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.SubmitRSVP)
	r.Patch("/{id}/toggle", h.ToggleStatus)
	r.Delete("/{id}", h.DeleteRSVP)

	return r
}
