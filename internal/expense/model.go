package expense

import (
	"time"

	"github.com/kpalanivelraj/nekipay/internal/person"
)

// Expense represents a single recorded expense. Expenses are immutable
// after creation; the only mutation is a hard delete.
type Expense struct {
	ID        string         `json:"id"`
	PaidBy    person.Person  `json:"paid_by"`
	PaidFor   person.PaidFor `json:"paid_for"`
	Amount    float64        `json:"amount"`
	Reason    string         `json:"reason"`
	CreatedAt time.Time      `json:"created_at"`
}

// Stats aggregates all expenses for display.
type Stats struct {
	TotalExpenses  float64 `json:"total_expenses"`
	KiruthikaTotal float64 `json:"kiruthika_total"`
	NehaTotal      float64 `json:"neha_total"`
	ExpenseCount   int     `json:"expense_count"`
	AverageExpense float64 `json:"average_expense"`
}
