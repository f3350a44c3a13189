package budget

import util "github.com/saulo-duarte/chronos-events/internal/utils"

type SetBudgetDTO struct {
	TotalBudget *float64 `json:"total_budget"`
}

type LockDTO struct {
	Locked bool `json:"budget_lock"`
}

type AddExpenseDTO struct {
	Name          string         `json:"expense_name"`
	Amount        *float64       `json:"expense_amount"`
	Category      string         `json:"expense_category"`
	PaymentMethod string         `json:"payment_method"`
	ExpenseDate   util.LocalDate `json:"expense_date"`
}

// BudgetResponse adds the figures shown next to the budget progress bar.
type BudgetResponse struct {
	*Budget
	RemainingBudget float64 `json:"remaining_budget"`
	UsedPercentage  float64 `json:"budget_used_percentage"`
}

func NewBudgetResponse(b *Budget) BudgetResponse {
	resp := BudgetResponse{Budget: b, RemainingBudget: b.TotalBudget - b.ActualSpend}
	if b.TotalBudget > 0 {
		resp.UsedPercentage = b.ActualSpend / b.TotalBudget * 100
	}
	return resp
}
