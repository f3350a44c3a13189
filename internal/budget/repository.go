package budget

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type BudgetRepository interface {
	Create(b *Budget) error
	Update(b *Budget) error
	FindByEvent(eventID uuid.UUID) (*Budget, error)
	AddExpense(e *Expense) (*Budget, error)
	ListExpenses(budgetID uuid.UUID) ([]*Expense, error)
}

type budgetRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) Create(b *Budget) error {
	return r.db.Omit("Event").Create(b).Error
}

func (r *budgetRepository) Update(b *Budget) error {
	return r.db.Omit("Event").Save(b).Error
}

func (r *budgetRepository) FindByEvent(eventID uuid.UUID) (*Budget, error) {
	var b Budget
	if err := r.db.First(&b, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// AddExpense stores the expense and adds its amount to the budget's actual
// spend in one transaction, returning the updated budget.
func (r *budgetRepository) AddExpense(e *Expense) (*Budget, error) {
	var b Budget
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Budget").Create(e).Error; err != nil {
			return err
		}
		res := tx.Model(&Budget{}).
			Where("id = ?", e.BudgetID).
			Updates(map[string]interface{}{
				"actual_spend": gorm.Expr("actual_spend + ?", e.Amount),
				"updated_at":   e.CreatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.First(&b, "id = ?", e.BudgetID).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *budgetRepository) ListExpenses(budgetID uuid.UUID) ([]*Expense, error) {
	var expenses []*Expense
	if err := r.db.
		Where("budget_id = ?", budgetID).
		Order("expense_date DESC NULLS LAST").
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}
