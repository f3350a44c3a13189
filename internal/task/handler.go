package task

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/chronos-events/internal/config"
	"github.com/saulo-duarte/chronos-events/internal/event"
	"github.com/saulo-duarte/chronos-events/internal/notification"
)

type Handler struct {
	service TaskService
}

func NewHandler(service TaskService) *Handler {
	return &Handler{service: service}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrTaskNotFound), errors.Is(err, ErrSubtaskNotFound),
		errors.Is(err, event.ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrInvalidPriority), errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrSubtaskNameRequired), errors.Is(err, event.ErrInvalidID):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, title string, err error) {
	notification.Error(r.Context(), notification.FromContext(r.Context()), title, err)
	config.JSON(w, statusFor(err), notification.Wrap(r.Context(), nil))
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateTaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.CreateTask(r.Context(), dto)
	if err != nil {
		h.fail(w, r, "Error creating task", err)
		return
	}

	notification.Success(r.Context(), notification.FromContext(r.Context()), "Task Created Successfully!")
	config.JSON(w, http.StatusCreated, notification.Wrap(r.Context(), t))
}

func (h *Handler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.ListByEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Failed to list tasks")
		http.Error(w, notification.Message(err), statusFor(err))
		return
	}

	config.JSON(w, http.StatusOK, tasks)
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.GetTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, notification.Message(err), statusFor(err))
		return
	}

	config.JSON(w, http.StatusOK, t)
}

func (h *Handler) ListSubtasks(w http.ResponseWriter, r *http.Request) {
	subtasks, err := h.service.ListSubtasks(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, notification.Message(err), statusFor(err))
		return
	}

	config.JSON(w, http.StatusOK, subtasks)
}

func (h *Handler) AddSubtask(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto AddSubtaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	st, err := h.service.AddSubtask(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		h.fail(w, r, "Error adding subtask", err)
		return
	}

	notification.Success(r.Context(), notification.FromContext(r.Context()), "Subtask added successfully!")
	config.JSON(w, http.StatusCreated, notification.Wrap(r.Context(), st))
}

func (h *Handler) ToggleSubtask(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.ToggleSubtask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "Error updating subtask", err)
		return
	}

	notification.Success(r.Context(), notification.FromContext(r.Context()), "Subtask updated successfully!")
	config.JSON(w, http.StatusOK, notification.Wrap(r.Context(), t))
}
