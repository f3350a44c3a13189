package budget

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-events/internal/event"
)

type fakeEvents struct {
	event.EventService
	known uuid.UUID
}

func (f *fakeEvents) GetEvent(ctx context.Context, id string) (*event.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, event.ErrInvalidID
	}
	if eventID != f.known {
		return nil, event.ErrEventNotFound
	}
	return &event.Event{ID: eventID}, nil
}

type fakeRepo struct {
	budgets  map[uuid.UUID]Budget
	expenses []Expense
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{budgets: map[uuid.UUID]Budget{}}
}

func (r *fakeRepo) Create(b *Budget) error {
	r.budgets[b.EventID] = *b
	return nil
}

func (r *fakeRepo) Update(b *Budget) error {
	r.budgets[b.EventID] = *b
	return nil
}

func (r *fakeRepo) FindByEvent(eventID uuid.UUID) (*Budget, error) {
	b, ok := r.budgets[eventID]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r *fakeRepo) AddExpense(e *Expense) (*Budget, error) {
	for id, b := range r.budgets {
		if b.ID == e.BudgetID {
			r.expenses = append(r.expenses, *e)
			b.ActualSpend += e.Amount
			r.budgets[id] = b
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) ListExpenses(budgetID uuid.UUID) ([]*Expense, error) {
	var out []*Expense
	for i := range r.expenses {
		if r.expenses[i].BudgetID == budgetID {
			e := r.expenses[i]
			out = append(out, &e)
		}
	}
	return out, nil
}

func newTestService(eventID uuid.UUID) (*budgetService, *fakeRepo) {
	repo := newFakeRepo()
	return &budgetService{
		repo:         repo,
		eventService: &fakeEvents{known: eventID},
		now:          func() time.Time { return time.Date(2024, time.March, 6, 1, 30, 0, 0, time.UTC) },
	}, repo
}

func amount(v float64) *float64 { return &v }
