package settlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/kpalanivelraj/nekipay/internal/balance"
	"github.com/kpalanivelraj/nekipay/internal/expense"
	"github.com/kpalanivelraj/nekipay/internal/person"
	"github.com/kpalanivelraj/nekipay/internal/validate"
)

// Common errors
var (
	ErrSettlementNotFound      = errors.New("settlement not found")
	ErrAlreadyConfirmed        = errors.New("settlement is already confirmed by both parties")
	ErrInvalidConfirmer        = errors.New("confirmer must be either sender or receiver")
	ErrAlreadyConfirmedByParty = errors.New("this party has already confirmed the settlement")
	ErrCannotDeleteConfirmed   = errors.New("cannot delete a confirmed settlement")
)

// Store is the persistence contract the service depends on
type Store interface {
	Create(ctx context.Context, s *Settlement) (*Settlement, error)
	GetByID(ctx context.Context, id string) (*Settlement, error)
	List(ctx context.Context, opts ListOptions) ([]*Settlement, error)
	MarkConfirmed(ctx context.Context, id string, byFrom bool, paymentMethod PaymentMethod) (bool, error)
	Finalize(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// ExpenseSource supplies the expenses the balance computation folds in
type ExpenseSource interface {
	List(ctx context.Context, opts expense.ListOptions) ([]*expense.Expense, error)
}

// Service handles settlement business logic and the two-party
// confirmation state machine
type Service struct {
	store     Store
	expenses  ExpenseSource
	rules     validate.Rules
	threshold float64
}

// NewService creates a new settlement service
func NewService(store Store, expenses ExpenseSource, rules validate.Rules, threshold float64) *Service {
	return &Service{
		store:     store,
		expenses:  expenses,
		rules:     rules,
		threshold: threshold,
	}
}

// Create validates and records a new pending settlement. Validation
// collects every violated rule; nothing is written on failure.
func (s *Service) Create(ctx context.Context, req *CreateSettlementRequest) (*Settlement, error) {
	var violations []string
	violations = append(violations, s.rules.Amount(req.Amount)...)
	violations = append(violations, validate.Person("from", req.From)...)
	violations = append(violations, validate.Person("to", req.To)...)
	if req.From != "" && req.From == req.To {
		violations = append(violations, "cannot settle with yourself")
	}
	if !PaymentMethod(req.PaymentMethod).Valid() {
		violations = append(violations, fmt.Sprintf("invalid payment method %q", req.PaymentMethod))
	}
	if err := validate.NewError(violations); err != nil {
		return nil, err
	}

	from, _ := person.Parse(req.From)
	to, _ := person.Parse(req.To)

	return s.store.Create(ctx, &Settlement{
		From:          from,
		To:            to,
		Amount:        req.Amount,
		PaymentMethod: PaymentMethod(req.PaymentMethod),
	})
}

// GetByID retrieves a settlement by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Settlement, error) {
	settlement, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if settlement == nil {
		return nil, ErrSettlementNotFound
	}
	return settlement, nil
}

// List retrieves settlements with optional status filter, order and limit
func (s *Service) List(ctx context.Context, opts ListOptions) ([]*Settlement, error) {
	return s.store.List(ctx, opts)
}

// Confirm records one party's confirmation of a settlement. Each flag is
// settable exactly once; once both are set the settlement transitions to
// confirmed and the confirmation time is stamped. The returned record
// reflects the post-update state so callers can see whether it is now
// fully confirmed.
func (s *Service) Confirm(ctx context.Context, id string, confirmedBy person.Person, paymentMethod PaymentMethod) (*Settlement, error) {
	settlement, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if settlement.Status == StatusConfirmed {
		return nil, ErrAlreadyConfirmed
	}

	var byFrom bool
	switch confirmedBy {
	case settlement.From:
		byFrom = true
	case settlement.To:
		byFrom = false
	default:
		return nil, ErrInvalidConfirmer
	}

	if (byFrom && settlement.ConfirmedByFrom) || (!byFrom && settlement.ConfirmedByTo) {
		return nil, ErrAlreadyConfirmedByParty
	}

	// The conditional update also catches the race where this party's
	// flag was set between our read and the write.
	updated, err := s.store.MarkConfirmed(ctx, id, byFrom, paymentMethod)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrAlreadyConfirmedByParty
	}

	// Transition to confirmed if the other party had already acted.
	// Finalize checks the post-update flags itself, so a concurrent
	// confirmation by the other party cannot be missed.
	if _, err := s.store.Finalize(ctx, id); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete removes a settlement permanently and returns the deleted record.
// Only pending settlements may be deleted.
func (s *Service) Delete(ctx context.Context, id string) (*Settlement, error) {
	settlement, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if settlement.Status == StatusConfirmed {
		return nil, ErrCannotDeleteConfirmed
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return nil, err
	}
	return settlement, nil
}

// Stats aggregates settlement totals and counts
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	all, err := s.store.List(ctx, ListOptions{})
	if err != nil {
		return nil, err
	}

	stats := &Stats{TotalCount: len(all)}
	for _, settlement := range all {
		if settlement.Status != StatusConfirmed {
			stats.PendingCount++
			continue
		}
		stats.ConfirmedCount++
		stats.TotalSettled += settlement.Amount
		switch settlement.From {
		case person.Kiruthika:
			stats.KiruthikaPaidNeha += settlement.Amount
		case person.Neha:
			stats.NehaPaidKiruthika += settlement.Amount
		}
	}

	return stats, nil
}

// Balance computes the current balance snapshot from all expenses and
// all confirmed settlements.
func (s *Service) Balance(ctx context.Context) (*balance.Balance, error) {
	expenses, err := s.expenses.List(ctx, expense.ListOptions{})
	if err != nil {
		return nil, err
	}
	confirmed, err := s.store.List(ctx, ListOptions{Status: StatusConfirmed})
	if err != nil {
		return nil, err
	}

	expenseEntries := make([]balance.ExpenseEntry, len(expenses))
	for i, e := range expenses {
		expenseEntries[i] = balance.ExpenseEntry{
			PaidBy:  e.PaidBy,
			PaidFor: e.PaidFor,
			Amount:  e.Amount,
		}
	}

	settlementEntries := make([]balance.SettlementEntry, len(confirmed))
	for i, c := range confirmed {
		settlementEntries[i] = balance.SettlementEntry{
			From:   c.From,
			To:     c.To,
			Amount: c.Amount,
		}
	}

	return balance.Calculate(expenseEntries, settlementEntries, s.threshold), nil
}

// ValidateProposed checks a proposed settlement against the current
// balance without writing anything. Direction mismatches and settling a
// zero balance fail; over-settlement only warns.
func (s *Service) ValidateProposed(ctx context.Context, req *ValidateSettlementRequest) (*balance.ValidationCheck, error) {
	var violations []string
	violations = append(violations, validate.Person("from", req.From)...)
	violations = append(violations, validate.Person("to", req.To)...)
	if err := validate.NewError(violations); err != nil {
		return nil, err
	}

	from, _ := person.Parse(req.From)
	to, _ := person.Parse(req.To)

	b, err := s.Balance(ctx)
	if err != nil {
		return nil, err
	}
	return balance.ValidateSettlement(from, to, req.Amount, b), nil
}
