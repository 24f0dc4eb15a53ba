package balance

import "fmt"

// Summary is the headline view of a balance snapshot.
type Summary struct {
	MainMessage  string  `json:"main_message"`
	Amount       float64 `json:"amount"`
	ShowAlert    bool    `json:"show_alert"`
	AlertMessage string  `json:"alert_message,omitempty"`
}

// Summarize builds the headline view, including the threshold alert text
// when the owed amount has crossed the configured limit.
func Summarize(b *Balance) *Summary {
	s := &Summary{
		MainMessage: b.WhoOwesWhom,
		Amount:      b.OwedAmount,
		ShowAlert:   b.ExceedsThreshold,
	}
	if b.ExceedsThreshold {
		s.AlertMessage = fmt.Sprintf("Reminder: balance exceeds %.0f!", b.ThresholdAmount)
	}
	return s
}

// PersonSummary is one party's side of the ledger.
type PersonSummary struct {
	Paid   float64 `json:"paid"`
	Owes   float64 `json:"owes"`
	IsOwed float64 `json:"is_owed"`
}

// IndividualSummary breaks the snapshot down per party.
type IndividualSummary struct {
	Kiruthika PersonSummary `json:"kiruthika"`
	Neha      PersonSummary `json:"neha"`
}

// Individual builds the per-party breakdown of a balance snapshot.
func Individual(b *Balance) *IndividualSummary {
	return &IndividualSummary{
		Kiruthika: PersonSummary{
			Paid:   b.KiruthikaPaid,
			Owes:   b.KiruthikaOwesNeha,
			IsOwed: b.NehaOwesKiruthika,
		},
		Neha: PersonSummary{
			Paid:   b.NehaPaid,
			Owes:   b.NehaOwesKiruthika,
			IsOwed: b.KiruthikaOwesNeha,
		},
	}
}
