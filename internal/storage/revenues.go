package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/glowbooks/glow/internal/common"
	"github.com/glowbooks/glow/internal/model"
)

// SaveRevenue persists a new revenue entry.
func (s *SQLiteStorage) SaveRevenue(ctx context.Context, rev *model.Revenue) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if rev == nil {
		return fmt.Errorf("%w: revenue", ErrNilParameter)
	}
	if err := rev.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO revenues (id, description, amount, date, payment_method, type)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rev.ID, rev.Description, rev.Amount.String(), rev.Date.String(),
		string(rev.Method), string(rev.Type),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("revenue %s: %w", rev.ID, common.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to save revenue: %w", err)
	}
	return nil
}

// GetRevenue retrieves a revenue entry by id.
func (s *SQLiteStorage) GetRevenue(ctx context.Context, id string) (*model.Revenue, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, description, amount, date, payment_method, type
		FROM revenues WHERE id = ?`, id)

	rev, err := scanRevenue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("revenue %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return rev, nil
}

// ListRevenues returns all stored revenues, most recent date first.
func (s *SQLiteStorage) ListRevenues(ctx context.Context) ([]model.Revenue, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, description, amount, date, payment_method, type
		FROM revenues ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list revenues: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var revenues []model.Revenue
	for rows.Next() {
		rev, err := scanRevenue(rows)
		if err != nil {
			return nil, err
		}
		revenues = append(revenues, *rev)
	}
	return revenues, rows.Err()
}

// DeleteRevenue removes a revenue entry. Deleting the personal side of a
// withdrawal pair also removes the withdrawal and its mirrored expense.
func (s *SQLiteStorage) DeleteRevenue(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM revenues WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete revenue: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("revenue %s: %w", id, common.ErrNotFound)
	}

	if err := cascadeFromRevenue(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit()
}

func scanRevenue(row rowScanner) (*model.Revenue, error) {
	var (
		rev          model.Revenue
		amount, date string
		method, typ  string
	)
	err := row.Scan(&rev.ID, &rev.Description, &amount, &date, &method, &typ)
	if err != nil {
		return nil, err
	}

	rev.Amount, err = parseStoredAmount(amount)
	if err != nil {
		return nil, fmt.Errorf("revenue %s: %w", rev.ID, err)
	}
	rev.Date, err = model.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("revenue %s: %w", rev.ID, err)
	}
	rev.Method = model.PaymentMethod(method)
	rev.Type = model.ExpenseType(typ)
	return &rev, nil
}
