package rsvp

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
	service RSVPService
}

func NewHandler(service RSVPService) *Handler {
	return &Handler{service: service}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, event.ErrEventNotFound), errors.Is(err, ErrAttendeeNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrIncompleteFields), errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrInvalidID), errors.Is(err, event.ErrInvalidID):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, title string, err error) {
	notification.Error(r.Context(), notification.FromContext(r.Context()), title, err)
	config.JSON(w, statusFor(err), notification.Wrap(r.Context(), nil))
}

func (h *Handler) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto SubmitRSVPDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	a, err := h.service.SubmitRSVP(r.Context(), dto)
	if err != nil {
		h.fail(w, r, "Error submitting RSVP", err)
		return
	}

	notification.Success(r.Context(), notification.FromContext(r.Context()), "RSVP successfully submitted!")
	config.JSON(w, http.StatusCreated, notification.Wrap(r.Context(), a))
}

func (h *Handler) ListAttendees(w http.ResponseWriter, r *http.Request) {
	attendees, err := h.service.ListAttendees(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Failed to list attendees")
		http.Error(w, notification.Message(err), statusFor(err))
		return
	}

	config.JSON(w, http.StatusOK, attendees)
}

func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	a, err := h.service.ToggleStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "Error", err)
		return
	}

	notification.Success(r.Context(), notification.FromContext(r.Context()), "RSVP status updated.")
	config.JSON(w, http.StatusOK, notification.Wrap(r.Context(), a))
}

func (h *Handler) DeleteRSVP(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteRSVP(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "Error", err)
		return
	}

	notification.Success(r.Context(), notification.FromContext(r.Context()), "RSVP deleted.")
	config.JSON(w, http.StatusOK, notification.Wrap(r.Context(), nil))
}
