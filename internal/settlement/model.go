package settlement

import (
	"time"

	"github.com/kpalanivelraj/nekipay/internal/person"
)

// Status represents the lifecycle state of a settlement.
// pending is the initial state; confirmed is terminal and is reached
// exactly once both parties have confirmed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

// PaymentMethod tags how a settlement was (or will be) paid.
// The empty value means not specified.
type PaymentMethod string

const (
	PaymentMethodGPay  PaymentMethod = "gpay"
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodOther PaymentMethod = "other"
)

// Valid reports whether m is a known payment method or unspecified.
func (m PaymentMethod) Valid() bool {
	switch m {
	case "", PaymentMethodGPay, PaymentMethodCash, PaymentMethodOther:
		return true
	}
	return false
}

// Settlement records money transferred from the debtor to the receiver
// to reduce the net balance. It becomes authoritative for balance
// computation only once both parties have confirmed it.
type Settlement struct {
	ID              string        `json:"id"`
	From            person.Person `json:"from"` // debtor initiating the payment
	To              person.Person `json:"to"`   // receiver
	Amount          float64       `json:"amount"`
	Status          Status        `json:"status"`
	ConfirmedByFrom bool          `json:"confirmed_by_from"`
	ConfirmedByTo   bool          `json:"confirmed_by_to"`
	PaymentMethod   PaymentMethod `json:"payment_method,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	ConfirmedAt     *time.Time    `json:"confirmed_at,omitempty"`
}

// NeedsConfirmationFrom reports whether p still has to confirm s.
func (s *Settlement) NeedsConfirmationFrom(p person.Person) bool {
	if s.Status == StatusConfirmed {
		return false
	}
	switch p {
	case s.From:
		return !s.ConfirmedByFrom
	case s.To:
		return !s.ConfirmedByTo
	}
	return false
}

// Stats aggregates confirmed and pending settlements for display.
type Stats struct {
	TotalSettled      float64 `json:"total_settled"`
	KiruthikaPaidNeha float64 `json:"kiruthika_paid_neha"`
	NehaPaidKiruthika float64 `json:"neha_paid_kiruthika"`
	ConfirmedCount    int     `json:"confirmed_count"`
	PendingCount      int     `json:"pending_count"`
	TotalCount        int     `json:"total_count"`
}
