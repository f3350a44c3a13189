package ticket

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
	service TicketService
}

func NewHandler(service TicketService) *Handler {
	return &Handler{service: service}
}

func statusFor(err error) int {
	if errors.Is(err, event.ErrEventNotFound) {
		return http.StatusNotFound
	}
	for _, v := range []error{
		ErrIncompleteFields, ErrInvalidQuantity, ErrQuantityTooLow,
		ErrInvalidTicketType, ErrInvalidPaymentStatus, ErrInvalidEmail,
		event.ErrInvalidID,
	} {
		if errors.Is(err, v) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func (h *Handler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	n := notification.FromContext(r.Context())

	var dto CreateTicketDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.CreateTicket(r.Context(), dto)
	if err != nil {
		notification.Error(r.Context(), n, "Error creating ticket", err)
		config.JSON(w, statusFor(err), notification.Wrap(r.Context(), nil))
		return
	}

	notification.Success(r.Context(), n, "Ticket created successfully!")
	config.JSON(w, http.StatusCreated, notification.Wrap(r.Context(), t))
}

func (h *Handler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.service.ListByEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Failed to list tickets")
		http.Error(w, notification.Message(err), statusFor(err))
		return
	}

	config.JSON(w, http.StatusOK, tickets)
}
