package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-events/internal/event"
	util "github.com/saulo-duarte/chronos-events/internal/utils"
)

// Budget is the spending limit of one event. ActualSpend is the running sum of
// its expenses.
type Budget struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	EventID     uuid.UUID   `gorm:"type:uuid;column:event_id;not null;uniqueIndex" json:"event_id"`
	Event       event.Event `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	TotalBudget float64     `gorm:"not null" json:"total_budget"`
	ActualSpend float64     `gorm:"not null;default:0" json:"actual_spend"`
	Locked      bool        `gorm:"column:budget_lock;not null;default:false" json:"budget_lock"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (Budget) TableName() string {
	return "event_budgets"
}

type Expense struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	BudgetID      uuid.UUID       `gorm:"type:uuid;column:budget_id;not null;index" json:"budget_id"`
	Budget        Budget          `gorm:"foreignKey:BudgetID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Name          string          `gorm:"column:expense_name;not null" json:"expense_name"`
	Amount        float64         `gorm:"column:expense_amount;not null" json:"expense_amount"`
	Category      ExpenseCategory `gorm:"column:expense_category;not null" json:"expense_category"`
	PaymentMethod PaymentMethod   `gorm:"not null" json:"payment_method"`
	ExpenseDate   util.LocalDate  `gorm:"type:date" json:"expense_date"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (Expense) TableName() string {
	return "expenses"
}
