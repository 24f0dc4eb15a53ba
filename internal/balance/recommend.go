package balance

import (
	"fmt"
	"math"

	"github.com/kpalanivelraj/nekipay/internal/person"
)

// Recommendation suggests the next settlement to clear (or reduce) the
// outstanding balance.
type Recommendation struct {
	ShouldSettle bool          `json:"should_settle"`
	Message      string        `json:"message"`
	Amount       float64       `json:"amount"`
	FullAmount   float64       `json:"full_amount,omitempty"`
	From         person.Person `json:"from,omitempty"`
	To           person.Person `json:"to,omitempty"`
	IsPartial    bool          `json:"is_partial"`
}

// Recommend derives a settlement suggestion from a balance snapshot.
// Above PartialSettlementCutoff it suggests half the debt (rounded up)
// as a partial settlement.
func Recommend(b *Balance) *Recommendation {
	debtor, ok := b.Debtor()
	if !ok {
		return &Recommendation{
			ShouldSettle: false,
			Message:      "All settled up! No payment needed.",
		}
	}

	suggested := b.OwedAmount
	if b.OwedAmount > PartialSettlementCutoff {
		suggested = math.Ceil(b.OwedAmount / 2)
	}

	return &Recommendation{
		ShouldSettle: true,
		Message:      fmt.Sprintf("%s should pay %s", debtor, debtor.Other()),
		Amount:       round2(suggested),
		FullAmount:   b.OwedAmount,
		From:         debtor,
		To:           debtor.Other(),
		IsPartial:    suggested < b.OwedAmount,
	}
}

// ValidationCheck is the outcome of checking a proposed settlement
// against the current balance. Warnings do not block the settlement.
type ValidationCheck struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidateSettlement checks that a proposed settlement is consistent with
// the current balance: the direction must match who actually owes, and
// there must be a debt to settle. An amount larger than the outstanding
// debt only warns, since the engine floors over-settlement at zero.
func ValidateSettlement(from, to person.Person, amount float64, b *Balance) *ValidationCheck {
	check := &ValidationCheck{Errors: []string{}, Warnings: []string{}}

	debtor, ok := b.Debtor()
	if !ok {
		check.Errors = append(check.Errors, "already settled up, no debt exists")
	} else if from != debtor || to != debtor.Other() {
		check.Errors = append(check.Errors,
			fmt.Sprintf("%s owes %s, not the other way around", debtor, debtor.Other()))
	}

	if amount > b.OwedAmount && b.OwedAmount > 0 {
		check.Warnings = append(check.Warnings,
			fmt.Sprintf("settlement amount %.2f exceeds current debt %.2f", amount, b.OwedAmount))
	}

	check.IsValid = len(check.Errors) == 0
	return check
}
