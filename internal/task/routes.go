package task

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateTask)
	r.Get("/{id}", h.GetTask)
	r.Get("/{id}/subtasks", h.ListSubtasks)
	r.Post("/{id}/subtasks", h.AddSubtask)

	return r
}

func SubtaskRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Patch("/{id}/toggle", h.ToggleSubtask)

	return r
}
