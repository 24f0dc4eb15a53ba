package expense

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kpalanivelraj/nekipay/internal/person"
	"github.com/kpalanivelraj/nekipay/internal/validate"
)

var testRules = validate.Rules{MinAmount: 1, MaxAmount: 100000}

// MockStore is a mock implementation of Store for testing
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, e *Expense) (*Expense, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Expense), args.Error(1)
}

func (m *MockStore) GetByID(ctx context.Context, id string) (*Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Expense), args.Error(1)
}

func (m *MockStore) List(ctx context.Context, opts ListOptions) ([]*Expense, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Expense), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreate_Valid(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	service := NewService(store, testRules)

	store.On("Create", ctx, mock.MatchedBy(func(e *Expense) bool {
		return e.PaidBy == person.Kiruthika &&
			e.PaidFor == person.PaidForBoth &&
			e.Amount == 250 &&
			e.Reason == "groceries"
	})).Return(&Expense{ID: "exp-1", PaidBy: person.Kiruthika, PaidFor: person.PaidForBoth, Amount: 250, Reason: "groceries", CreatedAt: time.Now()}, nil)

	created, err := service.Create(ctx, &CreateExpenseRequest{
		PaidBy: "Kiruthika",
		Amount: 250,
		Reason: "  groceries  ", // trimmed before storage
	})

	assert.NoError(t, err)
	assert.Equal(t, "exp-1", created.ID)
	store.AssertExpectations(t)
}

func TestCreate_CollectsAllViolations(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	service := NewService(store, testRules)

	_, err := service.Create(ctx, &CreateExpenseRequest{
		PaidBy:  "Alice",
		PaidFor: "Everyone",
		Amount:  0,
		Reason:  "",
	})

	var verr *validate.Error
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 4)

	// Fail closed: nothing written.
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	service := NewService(store, testRules)

	store.On("GetByID", ctx, "missing").Return(nil, nil)

	_, err := service.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrExpenseNotFound)
}

func TestDelete_ReturnsDeletedRecord(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	service := NewService(store, testRules)

	existing := &Expense{ID: "exp-1", PaidBy: person.Neha, PaidFor: person.PaidForBoth, Amount: 80, Reason: "auto"}
	store.On("GetByID", ctx, "exp-1").Return(existing, nil)
	store.On("Delete", ctx, "exp-1").Return(nil)

	deleted, err := service.Delete(ctx, "exp-1")
	assert.NoError(t, err)
	assert.Equal(t, existing, deleted)
	store.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	service := NewService(store, testRules)

	store.On("GetByID", ctx, "missing").Return(nil, nil)

	_, err := service.Delete(ctx, "missing")
	assert.ErrorIs(t, err, ErrExpenseNotFound)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	service := NewService(store, testRules)

	store.On("List", ctx, ListOptions{}).Return([]*Expense{
		{PaidBy: person.Kiruthika, Amount: 100},
		{PaidBy: person.Kiruthika, Amount: 50.50},
		{PaidBy: person.Neha, Amount: 200},
	}, nil)

	stats, err := service.Stats(ctx)
	assert.NoError(t, err)
	assert.InDelta(t, 350.50, stats.TotalExpenses, 1e-9)
	assert.InDelta(t, 150.50, stats.KiruthikaTotal, 1e-9)
	assert.InDelta(t, 200, stats.NehaTotal, 1e-9)
	assert.Equal(t, 3, stats.ExpenseCount)
	assert.InDelta(t, 116.83, stats.AverageExpense, 1e-9)
}

func TestStats_Empty(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	service := NewService(store, testRules)

	store.On("List", ctx, ListOptions{}).Return([]*Expense{}, nil)

	stats, err := service.Stats(ctx)
	assert.NoError(t, err)
	assert.Zero(t, stats.AverageExpense)
	assert.Zero(t, stats.ExpenseCount)
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	service := NewService(store, testRules)

	store.On("List", ctx, ListOptions{}).Return([]*Expense{
		{ID: "1", Reason: "Groceries at the market"},
		{ID: "2", Reason: "petrol"},
		{ID: "3", Reason: "more groceries"},
	}, nil)

	matches, err := service.Search(ctx, "GROCERIES")
	assert.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestRecent_DefaultsToFive(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	service := NewService(store, testRules)

	store.On("List", ctx, ListOptions{Order: "desc", Limit: 5}).Return([]*Expense{}, nil)

	_, err := service.Recent(ctx, 0)
	assert.NoError(t, err)
	store.AssertExpectations(t)
}
