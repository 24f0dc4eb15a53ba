package settlement

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// ListOptions narrows and orders a settlement listing.
type ListOptions struct {
	Status Status // zero value means no filter
	Order  string // "asc" or "desc" by creation time, default "desc"
	Limit  int    // 0 means no limit
}

// Repository handles settlement data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new settlement repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const settlementColumns = `id, from_person, to_person, amount, status,
	confirmed_by_from, confirmed_by_to, COALESCE(payment_method, ''), created_at, confirmed_at`

// Create inserts a new pending settlement, assigning its ID and creation
// timestamp
func (r *Repository) Create(ctx context.Context, s *Settlement) (*Settlement, error) {
	query := `
		INSERT INTO settlements (id, from_person, to_person, amount, status, payment_method)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		RETURNING created_at
	`

	s.ID = uuid.New().String()
	s.Status = StatusPending
	err := r.db.QueryRowContext(ctx, query, s.ID, s.From, s.To, s.Amount, s.Status, string(s.PaymentMethod)).
		Scan(&s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create settlement: %w", err)
	}

	return s, nil
}

// GetByID retrieves a settlement by its ID, or nil if absent
func (r *Repository) GetByID(ctx context.Context, id string) (*Settlement, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlements WHERE id = $1`

	s := &Settlement{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID,
		&s.From,
		&s.To,
		&s.Amount,
		&s.Status,
		&s.ConfirmedByFrom,
		&s.ConfirmedByTo,
		&s.PaymentMethod,
		&s.CreatedAt,
		&s.ConfirmedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}

	return s, nil
}

// List retrieves settlements, optionally filtered by status, ordered by
// creation time
func (r *Repository) List(ctx context.Context, opts ListOptions) ([]*Settlement, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlements`

	var args []interface{}
	if opts.Status != "" {
		args = append(args, opts.Status)
		query += fmt.Sprintf(" WHERE status = $%d", len(args))
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
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*Settlement
	for rows.Next() {
		s := &Settlement{}
		if err := rows.Scan(
			&s.ID, &s.From, &s.To, &s.Amount, &s.Status,
			&s.ConfirmedByFrom, &s.ConfirmedByTo, &s.PaymentMethod,
			&s.CreatedAt, &s.ConfirmedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}

	return settlements, rows.Err()
}

// MarkConfirmed sets one party's confirmation flag, optionally updating
// the payment method. The conditional WHERE makes the flag settable
// exactly once: a concurrent duplicate confirmation affects zero rows
// and reports false.
func (r *Repository) MarkConfirmed(ctx context.Context, id string, byFrom bool, paymentMethod PaymentMethod) (bool, error) {
	column := "confirmed_by_to"
	if byFrom {
		column = "confirmed_by_from"
	}

	query := fmt.Sprintf(`
		UPDATE settlements
		SET %[1]s = TRUE,
		    payment_method = COALESCE(NULLIF($2, ''), payment_method)
		WHERE id = $1 AND %[1]s = FALSE AND status = $3
	`, column)

	result, err := r.db.ExecContext(ctx, query, id, string(paymentMethod), StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to mark settlement confirmed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to mark settlement confirmed: %w", err)
	}
	return affected > 0, nil
}

// Finalize transitions a settlement to confirmed and stamps confirmed_at,
// but only when both flags are set and the settlement is still pending.
// The transition is one-way; calling it again affects zero rows.
func (r *Repository) Finalize(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE settlements
		SET status = $2, confirmed_at = NOW()
		WHERE id = $1 AND status = $3 AND confirmed_by_from AND confirmed_by_to
	`

	result, err := r.db.ExecContext(ctx, query, id, StatusConfirmed, StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to finalize settlement: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to finalize settlement: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a settlement permanently
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM settlements WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete settlement: %w", err)
	}
	return nil
}
