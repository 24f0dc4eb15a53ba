// Package balance computes who owes whom from the full set of expenses
// and confirmed settlements. It is a pure computation: no storage, no
// clocks, safe to call concurrently.
package balance

import (
	"fmt"
	"math"

	"github.com/kpalanivelraj/nekipay/internal/person"
)

// PartialSettlementCutoff is the owed amount above which the
// recommendation suggests paying half instead of the full debt,
// to avoid suggesting very large single transfers.
const PartialSettlementCutoff = 2000

// ExpenseEntry carries the minimal expense information the engine needs.
type ExpenseEntry struct {
	PaidBy  person.Person
	PaidFor person.PaidFor
	Amount  float64
}

// SettlementEntry carries the minimal settlement information the engine
// needs. Only confirmed settlements belong here.
type SettlementEntry struct {
	From   person.Person
	To     person.Person
	Amount float64
}

// Balance is the derived snapshot of the shared ledger. It is computed
// fresh on every query and never persisted.
type Balance struct {
	KiruthikaPaid float64 `json:"kiruthika_paid"`
	NehaPaid      float64 `json:"neha_paid"`
	TotalExpenses float64 `json:"total_expenses"`
	FairShare     float64 `json:"fair_share"`

	KiruthikaOwesNeha float64 `json:"kiruthika_owes_neha"`
	NehaOwesKiruthika float64 `json:"neha_owes_kiruthika"`

	// NetBalance is positive when Kiruthika owes Neha, negative when
	// Neha owes Kiruthika.
	NetBalance  float64 `json:"net_balance"`
	OwedAmount  float64 `json:"owed_amount"`
	WhoOwesWhom string  `json:"who_owes_whom"`

	ExceedsThreshold bool    `json:"exceeds_threshold"`
	ThresholdAmount  float64 `json:"threshold_amount"`

	TotalSettled float64 `json:"total_settled"`
}

// Calculate folds all expenses and confirmed settlements into a single
// balance snapshot.
//
// Debt rules per expense:
//   - PaidFor Both: the other party owes the payer half.
//   - PaidFor equals the payer: self-funded, no debt.
//   - PaidFor names the other party: the beneficiary owes the full amount.
//
// Confirmed settlements reduce the matching one-directional debt, floored
// at zero. Excess beyond the outstanding debt in that direction is
// discarded, not credited to the reverse direction.
func Calculate(expenses []ExpenseEntry, settlements []SettlementEntry, threshold float64) *Balance {
	var kiruthikaPaid, nehaPaid float64
	var kiruthikaOwesNeha, nehaOwesKiruthika float64

	for _, e := range expenses {
		paidFor := e.PaidFor
		if paidFor == "" {
			paidFor = person.PaidForBoth
		}

		switch e.PaidBy {
		case person.Kiruthika:
			kiruthikaPaid += e.Amount
		case person.Neha:
			nehaPaid += e.Amount
		}

		if paidFor == person.PaidForBoth {
			half := e.Amount / 2
			if e.PaidBy == person.Kiruthika {
				nehaOwesKiruthika += half
			} else if e.PaidBy == person.Neha {
				kiruthikaOwesNeha += half
			}
			continue
		}

		// Single beneficiary: full amount owed to the payer, unless
		// the payer paid for themselves.
		beneficiary, _ := paidFor.Person()
		if beneficiary == person.Neha && e.PaidBy == person.Kiruthika {
			nehaOwesKiruthika += e.Amount
		} else if beneficiary == person.Kiruthika && e.PaidBy == person.Neha {
			kiruthikaOwesNeha += e.Amount
		}
	}

	totalExpenses := kiruthikaPaid + nehaPaid

	var totalSettled float64
	for _, s := range settlements {
		totalSettled += s.Amount
		if s.From == person.Kiruthika && s.To == person.Neha {
			kiruthikaOwesNeha = math.Max(0, kiruthikaOwesNeha-s.Amount)
		} else if s.From == person.Neha && s.To == person.Kiruthika {
			nehaOwesKiruthika = math.Max(0, nehaOwesKiruthika-s.Amount)
		}
	}

	netBalance := kiruthikaOwesNeha - nehaOwesKiruthika

	var whoOwesWhom string
	var owedAmount float64
	switch {
	case netBalance > 0:
		whoOwesWhom = fmt.Sprintf("%s owes %s", person.Kiruthika, person.Neha)
		owedAmount = netBalance
	case netBalance < 0:
		whoOwesWhom = fmt.Sprintf("%s owes %s", person.Neha, person.Kiruthika)
		owedAmount = -netBalance
	default:
		whoOwesWhom = "All settled up!"
	}

	owedAmount = round2(owedAmount)

	return &Balance{
		KiruthikaPaid:     round2(kiruthikaPaid),
		NehaPaid:          round2(nehaPaid),
		TotalExpenses:     round2(totalExpenses),
		FairShare:         round2(totalExpenses / 2),
		KiruthikaOwesNeha: round2(kiruthikaOwesNeha),
		NehaOwesKiruthika: round2(nehaOwesKiruthika),
		NetBalance:        round2(netBalance),
		OwedAmount:        owedAmount,
		WhoOwesWhom:       whoOwesWhom,
		ExceedsThreshold:  owedAmount >= threshold,
		ThresholdAmount:   threshold,
		TotalSettled:      round2(totalSettled),
	}
}

// Debtor returns the party who currently owes money, or false when the
// ledger is settled.
func (b *Balance) Debtor() (person.Person, bool) {
	switch {
	case b.NetBalance > 0:
		return person.Kiruthika, true
	case b.NetBalance < 0:
		return person.Neha, true
	default:
		return "", false
	}
}

// round2 rounds to two decimal places, half away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
