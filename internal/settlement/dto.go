package settlement

import "github.com/kpalanivelraj/nekipay/internal/balance"

// CreateSettlementRequest represents the request to create a settlement
type CreateSettlementRequest struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method,omitempty"`
}

// ConfirmSettlementRequest represents the request to confirm a settlement.
// The PIN gates the confirmation; payment method optionally overwrites
// whatever was set at creation.
type ConfirmSettlementRequest struct {
	ConfirmedBy   string `json:"confirmed_by"`
	PIN           string `json:"pin"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

// ValidateSettlementRequest proposes a settlement to check against the
// current balance without writing anything.
type ValidateSettlementRequest struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// SettlementResponse represents the response for a settlement
type SettlementResponse struct {
	ID              string  `json:"id"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	ConfirmedByFrom bool    `json:"confirmed_by_from"`
	ConfirmedByTo   bool    `json:"confirmed_by_to"`
	PaymentMethod   string  `json:"payment_method,omitempty"`
	CreatedAt       string  `json:"created_at"`
	ConfirmedAt     string  `json:"confirmed_at,omitempty"`
}

// ConfirmSettlementResponse wraps the post-confirmation record so callers
// can see whether both parties have now acted.
type ConfirmSettlementResponse struct {
	Message          string              `json:"message"`
	Settlement       *SettlementResponse `json:"settlement"`
	IsFullyConfirmed bool                `json:"is_fully_confirmed"`
}

// DeleteSettlementResponse confirms a deletion and echoes the removed record
type DeleteSettlementResponse struct {
	Message           string              `json:"message"`
	DeletedSettlement *SettlementResponse `json:"deleted_settlement"`
}

// BalanceResponse is the full balance view: snapshot plus derived summaries
type BalanceResponse struct {
	Balance        *balance.Balance           `json:"balance"`
	Summary        *balance.Summary           `json:"summary"`
	Individual     *balance.IndividualSummary `json:"individual"`
	Recommendation *balance.Recommendation    `json:"recommendation"`
}

// ToResponse converts a Settlement model to a SettlementResponse DTO
func (s *Settlement) ToResponse() *SettlementResponse {
	resp := &SettlementResponse{
		ID:              s.ID,
		From:            string(s.From),
		To:              string(s.To),
		Amount:          s.Amount,
		Status:          string(s.Status),
		ConfirmedByFrom: s.ConfirmedByFrom,
		ConfirmedByTo:   s.ConfirmedByTo,
		PaymentMethod:   string(s.PaymentMethod),
		CreatedAt:       s.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if s.ConfirmedAt != nil {
		resp.ConfirmedAt = s.ConfirmedAt.UTC().Format("2006-01-02T15:04:05Z")
	}
	return resp
}
