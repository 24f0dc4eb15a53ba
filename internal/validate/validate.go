// Package validate holds the input validation rules shared by the expense
// and settlement features. Validators return the full list of violations
// rather than stopping at the first one, so the caller can fix everything
// in a single round trip.
package validate

import (
	"fmt"
	"strings"

	"github.com/kpalanivelraj/nekipay/internal/person"
)

// MaxReasonLength bounds the free-text reason on an expense.
const MaxReasonLength = 100

// PINLength is the fixed length of the shared PIN.
const PINLength = 6

// Error is a validation failure carrying every violated rule.
// It is always detected before any write happens.
type Error struct {
	Violations []string
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.Violations, ", ")
}

// NewError wraps a list of violations, or returns nil if there are none.
func NewError(violations []string) error {
	if len(violations) == 0 {
		return nil
	}
	return &Error{Violations: violations}
}

// Rules holds the configurable bounds for money amounts.
type Rules struct {
	MinAmount float64
	MaxAmount float64
}

// Amount validates a money amount against the configured bounds.
func (r Rules) Amount(amount float64) []string {
	var violations []string
	if amount < r.MinAmount {
		violations = append(violations, fmt.Sprintf("amount must be at least %g", r.MinAmount))
	}
	if amount > r.MaxAmount {
		violations = append(violations, fmt.Sprintf("amount cannot exceed %g", r.MaxAmount))
	}
	return violations
}

// Person validates that the raw value names one of the two parties.
func Person(field, raw string) []string {
	if raw == "" {
		return []string{field + " is required"}
	}
	if _, err := person.Parse(raw); err != nil {
		return []string{fmt.Sprintf("invalid person %q for %s", raw, field)}
	}
	return nil
}

// PaidFor validates the beneficiary field. Empty is allowed and
// normalizes to Both.
func PaidFor(raw string) []string {
	if _, err := person.ParsePaidFor(raw); err != nil {
		return []string{fmt.Sprintf("invalid paid for option %q", raw)}
	}
	return nil
}

// Reason validates the expense reason text.
func Reason(reason string) []string {
	var violations []string
	if strings.TrimSpace(reason) == "" {
		violations = append(violations, "reason is required")
	}
	if len(reason) > MaxReasonLength {
		violations = append(violations, fmt.Sprintf("reason cannot exceed %d characters", MaxReasonLength))
	}
	return violations
}

// PIN validates the PIN format: exactly PINLength digits.
func PIN(pin string) []string {
	var violations []string
	if pin == "" {
		return []string{"PIN is required"}
	}
	if len(pin) != PINLength {
		violations = append(violations, fmt.Sprintf("PIN must be %d digits", PINLength))
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			violations = append(violations, "PIN must contain only numbers")
			break
		}
	}
	return violations
}
