package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/chronos-events/internal/calendar"
	"github.com/saulo-duarte/chronos-events/internal/config"
	"github.com/saulo-duarte/chronos-events/internal/notification"
)

type Handler struct {
	service EventService
}

func NewHandler(service EventService) *Handler {
	return &Handler{service: service}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, calendar.ErrValidation),
		errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrInvalidCategory),
		errors.Is(err, ErrInvalidKind),
		errors.Is(err, ErrKindMismatch),
		errors.Is(err, ErrDateRequired),
		errors.Is(err, ErrInvalidDates):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, title string, err error) {
	n := notification.FromContext(r.Context())
	notification.Error(r.Context(), n, title, err)
	config.JSON(w, statusFor(err), notification.Wrap(r.Context(), nil))
}

// ListEvents returns every event, or only one kind with ?kind=CORPORATE|PARTY.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var (
		events []*Event
		err    error
	)
	if kind := r.URL.Query().Get("kind"); kind != "" {
		events, err = h.service.ListByKind(r.Context(), kind)
	} else {
		events, err = h.service.ListEvents(r.Context())
	}
	if err != nil {
		log.WithError(err).Error("Failed to list events")
		http.Error(w, notification.Message(err), statusFor(err))
		return
	}

	config.JSON(w, http.StatusOK, events)
}

func (h *Handler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	events, err := h.service.SearchEvents(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		log.WithError(err).Error("Failed to search events")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, events)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	e, err := h.service.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, notification.Message(err), statusFor(err))
		return
	}

	config.JSON(w, http.StatusOK, e)
}

// ListEventTypes returns the event types of each kind, or of one kind with ?kind=.
func (h *Handler) ListEventTypes(w http.ResponseWriter, r *http.Request) {
	types := []EventTypesResponse{
		{Kind: KindCorporate, Categories: CorporateCategories},
		{Kind: KindParty, Categories: PartyCategories},
	}

	if raw := r.URL.Query().Get("kind"); raw != "" {
		kind := Kind(strings.ToUpper(strings.TrimSpace(raw)))
		if !kind.IsValid() {
			http.Error(w, notification.Message(ErrInvalidKind), http.StatusBadRequest)
			return
		}
		for _, t := range types {
			if t.Kind == kind {
				types = []EventTypesResponse{t}
				break
			}
		}
	}

	config.JSON(w, http.StatusOK, types)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var draft calendar.EventDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	fields, err := draft.Validate(config.Location)
	if err != nil {
		h.fail(w, r, "Validation Error", err)
		return
	}

	e, err := h.service.CreateEvent(r.Context(), fields)
	if err != nil {
		h.fail(w, r, "Error creating event", err)
		return
	}

	notification.Success(r.Context(), notification.FromContext(r.Context()), "Event created successfully!")
	config.JSON(w, http.StatusCreated, notification.Wrap(r.Context(), e))
}

func (h *Handler) UpdateEventDate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateEventDateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	e, err := h.service.UpdateEventDate(r.Context(), chi.URLParam(r, "id"), dto.NewStartDate)
	if err != nil {
		h.fail(w, r, "Error moving event", err)
		return
	}

	notification.Success(r.Context(), notification.FromContext(r.Context()), "Event moved successfully!")
	config.JSON(w, http.StatusOK, notification.Wrap(r.Context(), e))
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "Error deleting event", err)
		return
	}

	notification.Success(r.Context(), notification.FromContext(r.Context()), "Event deleted successfully!")
	config.JSON(w, http.StatusOK, notification.Wrap(r.Context(), nil))
}

func (h *Handler) ExportICS(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	body, err := h.service.ExportICS(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to export events")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="events.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.WithError(err).Warn("Failed to write calendar export")
	}
}
