package budget

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{eventId}", h.GetBudget)
	r.Put("/{eventId}", h.SetBudget)
	r.Patch("/{eventId}/lock", h.SetLock)
	r.Get("/{eventId}/expenses", h.ListExpenses)
	r.Post("/{eventId}/expenses", h.AddExpense)

	return r
}
