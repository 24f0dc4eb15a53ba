package expense

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/kpalanivelraj/nekipay/internal/person"
	"github.com/kpalanivelraj/nekipay/internal/validate"
)

// Common errors
var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// Store is the persistence contract the service depends on
type Store interface {
	Create(ctx context.Context, e *Expense) (*Expense, error)
	GetByID(ctx context.Context, id string) (*Expense, error)
	List(ctx context.Context, opts ListOptions) ([]*Expense, error)
	Delete(ctx context.Context, id string) error
}

// Service handles expense business logic
type Service struct {
	store Store
	rules validate.Rules
}

// NewService creates a new expense service
func NewService(store Store, rules validate.Rules) *Service {
	return &Service{store: store, rules: rules}
}

// Create validates and records a new expense. Validation collects every
// violated rule before rejecting, and nothing is written on failure.
func (s *Service) Create(ctx context.Context, req *CreateExpenseRequest) (*Expense, error) {
	var violations []string
	violations = append(violations, s.rules.Amount(req.Amount)...)
	violations = append(violations, validate.Person("paid_by", req.PaidBy)...)
	violations = append(violations, validate.PaidFor(req.PaidFor)...)
	violations = append(violations, validate.Reason(req.Reason)...)
	if err := validate.NewError(violations); err != nil {
		return nil, err
	}

	paidBy, _ := person.Parse(req.PaidBy)
	paidFor, _ := person.ParsePaidFor(req.PaidFor)

	return s.store.Create(ctx, &Expense{
		PaidBy:  paidBy,
		PaidFor: paidFor,
		Amount:  req.Amount,
		Reason:  strings.TrimSpace(req.Reason),
	})
}

// GetByID retrieves an expense by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Expense, error) {
	e, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrExpenseNotFound
	}
	return e, nil
}

// List retrieves expenses with optional payer filter, order and limit
func (s *Service) List(ctx context.Context, opts ListOptions) ([]*Expense, error) {
	return s.store.List(ctx, opts)
}

// Recent retrieves the n most recent expenses
func (s *Service) Recent(ctx context.Context, n int) ([]*Expense, error) {
	if n < 1 {
		n = 5
	}
	return s.store.List(ctx, ListOptions{Order: "desc", Limit: n})
}

// Search returns expenses whose reason contains the keyword,
// case-insensitively. The match runs in memory over the full listing;
// the ledger only ever holds two people's expenses.
func (s *Service) Search(ctx context.Context, keyword string) ([]*Expense, error) {
	all, err := s.store.List(ctx, ListOptions{})
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(keyword)
	var matches []*Expense
	for _, e := range all {
		if strings.Contains(strings.ToLower(e.Reason), term) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// Delete removes an expense permanently and returns the deleted record
func (s *Service) Delete(ctx context.Context, id string) (*Expense, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return nil, err
	}
	return e, nil
}

// Stats aggregates totals per person, count and average
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	all, err := s.store.List(ctx, ListOptions{})
	if err != nil {
		return nil, err
	}

	stats := &Stats{ExpenseCount: len(all)}
	for _, e := range all {
		stats.TotalExpenses += e.Amount
		switch e.PaidBy {
		case person.Kiruthika:
			stats.KiruthikaTotal += e.Amount
		case person.Neha:
			stats.NehaTotal += e.Amount
		}
	}
	if len(all) > 0 {
		stats.AverageExpense = round2(stats.TotalExpenses / float64(len(all)))
	}
	stats.TotalExpenses = round2(stats.TotalExpenses)
	stats.KiruthikaTotal = round2(stats.KiruthikaTotal)
	stats.NehaTotal = round2(stats.NehaTotal)

	return stats, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
