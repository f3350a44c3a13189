package budget

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
	service BudgetService
}

func NewHandler(service BudgetService) *Handler {
	return &Handler{service: service}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, event.ErrEventNotFound), errors.Is(err, ErrBudgetNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBudgetLocked):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidTotal), errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrInvalidPaymentMethod),
		errors.Is(err, event.ErrInvalidID):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, title string, err error) {
	notification.Error(r.Context(), notification.FromContext(r.Context()), title, err)
	config.JSON(w, statusFor(err), notification.Wrap(r.Context(), nil))
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) GetBudget(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetBudget(r.Context(), chi.URLParam(r, "eventId"))
	if err != nil {
		http.Error(w, notification.Message(err), statusFor(err))
		return
	}

	config.JSON(w, http.StatusOK, NewBudgetResponse(b))
}

func (h *Handler) SetBudget(w http.ResponseWriter, r *http.Request) {
	var dto SetBudgetDTO
	if !decode(w, r, &dto) {
		return
	}

	b, created, err := h.service.SetBudget(r.Context(), chi.URLParam(r, "eventId"), dto)
	if err != nil {
		h.fail(w, r, "Error setting budget", err)
		return
	}

	n := notification.FromContext(r.Context())
	if created {
		notification.Success(r.Context(), n, "Budget has been set")
		config.JSON(w, http.StatusCreated, notification.Wrap(r.Context(), NewBudgetResponse(b)))
		return
	}
	notification.Success(r.Context(), n, "Budget has been updated")
	config.JSON(w, http.StatusOK, notification.Wrap(r.Context(), NewBudgetResponse(b)))
}

func (h *Handler) SetLock(w http.ResponseWriter, r *http.Request) {
	var dto LockDTO
	if !decode(w, r, &dto) {
		return
	}

	b, err := h.service.SetLock(r.Context(), chi.URLParam(r, "eventId"), dto.Locked)
	if err != nil {
		h.fail(w, r, "Error updating budget lock status", err)
		return
	}

	notification.Success(r.Context(), notification.FromContext(r.Context()), "Budget lock status updated")
	config.JSON(w, http.StatusOK, notification.Wrap(r.Context(), NewBudgetResponse(b)))
}

func (h *Handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var dto AddExpenseDTO
	if !decode(w, r, &dto) {
		return
	}

	e, b, err := h.service.AddExpense(r.Context(), chi.URLParam(r, "eventId"), dto)
	if err != nil {
		h.fail(w, r, "Error adding expense and updating Actual Spend", err)
		return
	}

	notification.Success(r.Context(), notification.FromContext(r.Context()), "Expense has been added and Actual Spend updated")
	config.JSON(w, http.StatusCreated, notification.Wrap(r.Context(), map[string]interface{}{
		"expense": e,
		"budget":  NewBudgetResponse(b),
	}))
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.ListExpenses(r.Context(), chi.URLParam(r, "eventId"))
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Failed to list expenses")
		http.Error(w, notification.Message(err), statusFor(err))
		return
	}

	config.JSON(w, http.StatusOK, expenses)
}
