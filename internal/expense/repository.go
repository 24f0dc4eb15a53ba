package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kpalanivelraj/nekipay/internal/person"
)

// ListOptions narrows and orders an expense listing.
type ListOptions struct {
	PaidBy person.Person // zero value means no filter
	Order  string        // "asc" or "desc" by creation time, default "desc"
	Limit  int           // 0 means no limit
}

// Repository handles expense data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new expense, assigning its ID and creation timestamp
func (r *Repository) Create(ctx context.Context, e *Expense) (*Expense, error) {
	query := `
		INSERT INTO expenses (id, paid_by, paid_for, amount, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	e.ID = uuid.New().String()
	err := r.db.QueryRowContext(ctx, query, e.ID, e.PaidBy, e.PaidFor, e.Amount, e.Reason).
		Scan(&e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return e, nil
}

// GetByID retrieves an expense by its ID, or nil if absent
func (r *Repository) GetByID(ctx context.Context, id string) (*Expense, error) {
	// paid_for is nullable for records created before the field existed;
	// normalize to 'Both' on read.
	query := `
		SELECT id, paid_by, COALESCE(NULLIF(paid_for, ''), 'Both'), amount, reason, created_at
		FROM expenses
		WHERE id = $1
	`

	e := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.PaidBy,
		&e.PaidFor,
		&e.Amount,
		&e.Reason,
		&e.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return e, nil
}

// List retrieves expenses, optionally filtered by payer, ordered by
// creation time
func (r *Repository) List(ctx context.Context, opts ListOptions) ([]*Expense, error) {
	query := `
		SELECT id, paid_by, COALESCE(NULLIF(paid_for, ''), 'Both'), amount, reason, created_at
		FROM expenses
	`

	var args []interface{}
	if opts.PaidBy != "" {
		args = append(args, opts.PaidBy)
		query += fmt.Sprintf(" WHERE paid_by = $%d", len(args))
	}

	if opts.Order == "asc" {
		query += " ORDER BY created_at ASC"
	} else {
		query += " ORDER BY created_at DESC"
	}

	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		e := &Expense{}
		if err := rows.Scan(&e.ID, &e.PaidBy, &e.PaidFor, &e.Amount, &e.Reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

// Delete removes an expense permanently
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
