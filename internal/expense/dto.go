package expense

// CreateExpenseRequest represents the request to create an expense
type CreateExpenseRequest struct {
	PaidBy  string  `json:"paid_by"`
	PaidFor string  `json:"paid_for,omitempty"` // defaults to "Both"
	Amount  float64 `json:"amount"`
	Reason  string  `json:"reason"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID        string  `json:"id"`
	PaidBy    string  `json:"paid_by"`
	PaidFor   string  `json:"paid_for"`
	Amount    float64 `json:"amount"`
	Reason    string  `json:"reason"`
	CreatedAt string  `json:"created_at"`
}

// DeleteExpenseResponse confirms a deletion and echoes the removed record
type DeleteExpenseResponse struct {
	Message        string           `json:"message"`
	DeletedExpense *ExpenseResponse `json:"deleted_expense"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:        e.ID,
		PaidBy:    string(e.PaidBy),
		PaidFor:   string(e.PaidFor),
		Amount:    e.Amount,
		Reason:    e.Reason,
		CreatedAt: e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
