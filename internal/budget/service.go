package budget

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-events/internal/config"
	"github.com/saulo-duarte/chronos-events/internal/event"
	"github.com/saulo-duarte/chronos-events/internal/notification"
	util "github.com/saulo-duarte/chronos-events/internal/utils"
	"github.com/sirupsen/logrus"
)

const defaultExpenseName = "Unnamed Expense"

var (
	ErrBudgetNotFound       = notification.NewPublicError("No budget found for this event. Please set a budget first.", nil)
	ErrBudgetLocked         = notification.NewPublicError("Budget is locked and cannot be updated", nil)
	ErrInvalidTotal         = notification.NewPublicError("Total budget must be zero or more", nil)
	ErrInvalidAmount        = notification.NewPublicError("Expense amount must be greater than zero", nil)
	ErrInvalidCategory      = notification.NewPublicError("Invalid expense category", nil)
	ErrInvalidPaymentMethod = notification.NewPublicError("Invalid payment method", nil)
)

type BudgetService interface {
	GetBudget(ctx context.Context, eventID string) (*Budget, error)
	SetBudget(ctx context.Context, eventID string, dto SetBudgetDTO) (b *Budget, created bool, err error)
	SetLock(ctx context.Context, eventID string, locked bool) (*Budget, error)
	AddExpense(ctx context.Context, eventID string, dto AddExpenseDTO) (*Expense, *Budget, error)
	ListExpenses(ctx context.Context, eventID string) ([]*Expense, error)
}

type budgetService struct {
	repo         BudgetRepository
	eventService event.EventService
	now          func() time.Time
}

func NewService(repo BudgetRepository, eventService event.EventService) BudgetService {
	return &budgetService{
		repo:         repo,
		eventService: eventService,
		now:          time.Now,
	}
}

// find resolves the event first so unknown events report "Event not found"
// rather than a missing budget.
func (s *budgetService) find(ctx context.Context, eventID string) (uuid.UUID, *Budget, error) {
	e, err := s.eventService.GetEvent(ctx, eventID)
	if err != nil {
		return uuid.Nil, nil, err
	}

	b, err := s.repo.FindByEvent(e.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return e.ID, nil, ErrBudgetNotFound
		}
		config.WithContext(ctx).WithError(err).Error("Error finding event budget")
		return e.ID, nil, err
	}
	return e.ID, b, nil
}

func (s *budgetService) GetBudget(ctx context.Context, eventID string) (*Budget, error) {
	_, b, err := s.find(ctx, eventID)
	return b, err
}

func (s *budgetService) SetBudget(ctx context.Context, eventID string, dto SetBudgetDTO) (*Budget, bool, error) {
	log := config.WithContext(ctx).WithField("event_id", eventID)

	if dto.TotalBudget == nil || *dto.TotalBudget < 0 {
		return nil, false, ErrInvalidTotal
	}

	id, b, err := s.find(ctx, eventID)
	if err != nil && !errors.Is(err, ErrBudgetNotFound) {
		return nil, false, err
	}

	now := s.now()
	if b == nil {
		b = &Budget{
			ID:          uuid.New(),
			EventID:     id,
			TotalBudget: *dto.TotalBudget,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.repo.Create(b); err != nil {
			log.WithError(err).Error("Failed to create budget")
			return nil, false, err
		}
		log.WithField("total_budget", b.TotalBudget).Info("Budget set")
		return b, true, nil
	}

	if b.Locked {
		log.Warn("Attempt to update a locked budget")
		return nil, false, ErrBudgetLocked
	}

	b.TotalBudget = *dto.TotalBudget
	b.UpdatedAt = now
	if err := s.repo.Update(b); err != nil {
		log.WithError(err).Error("Failed to update budget")
		return nil, false, err
	}
	log.WithField("total_budget", b.TotalBudget).Info("Budget updated")
	return b, false, nil
}

func (s *budgetService) SetLock(ctx context.Context, eventID string, locked bool) (*Budget, error) {
	_, b, err := s.find(ctx, eventID)
	if err != nil {
		return nil, err
	}

	b.Locked = locked
	b.UpdatedAt = s.now()
	if err := s.repo.Update(b); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to update budget lock")
		return nil, err
	}
	return b, nil
}

func (s *budgetService) AddExpense(ctx context.Context, eventID string, dto AddExpenseDTO) (*Expense, *Budget, error) {
	log := config.WithContext(ctx)

	_, b, err := s.find(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	if dto.Amount == nil || *dto.Amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}
	category := ExpenseCategory(strings.TrimSpace(dto.Category))
	if !category.IsValid() {
		return nil, nil, ErrInvalidCategory
	}
	method := PaymentMethod(strings.TrimSpace(dto.PaymentMethod))
	if !method.IsValid() {
		return nil, nil, ErrInvalidPaymentMethod
	}

	name := strings.TrimSpace(dto.Name)
	if name == "" {
		name = defaultExpenseName
	}

	now := s.now()
	date := dto.ExpenseDate
	if date.IsZero() {
		date = util.DateOf(now.In(config.Location))
	}

	e := &Expense{
		ID:            uuid.New(),
		BudgetID:      b.ID,
		Name:          name,
		Amount:        *dto.Amount,
		Category:      category,
		PaymentMethod: method,
		ExpenseDate:   date,
		CreatedAt:     now,
	}

	updated, err := s.repo.AddExpense(e)
	if err != nil {
		log.WithError(err).Error("Failed to add expense")
		return nil, nil, err
	}

	log.WithFields(logrus.Fields{
		"budget_id":    b.ID,
		"expense_id":   e.ID,
		"actual_spend": updated.ActualSpend,
	}).Info("Expense added")
	return e, updated, nil
}

func (s *budgetService) ListExpenses(ctx context.Context, eventID string) ([]*Expense, error) {
	_, b, err := s.find(ctx, eventID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.repo.ListExpenses(b.ID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list expenses")
		return nil, err
	}
	return expenses, nil
}
