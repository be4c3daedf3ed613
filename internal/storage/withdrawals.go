package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glowbooks/glow/internal/common"
	"github.com/glowbooks/glow/internal/model"
)

// RecordWithdrawal stores a withdrawal together with its paired records: a
// professional expense on the studio ledger and a personal revenue mirroring
// the money moving to the owner. All three rows are written in one database
// transaction; either the full pair exists or none of it does. The paired
// record ids are assigned here and written back to the withdrawal.
func (s *SQLiteStorage) RecordWithdrawal(ctx context.Context, w *model.Withdrawal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if w == nil {
		return fmt.Errorf("%w: withdrawal", ErrNilParameter)
	}
	if err := w.Validate(); err != nil {
		return err
	}

	w.ExpenseID = uuid.NewString()
	w.RevenueID = uuid.NewString()

	desc := w.DefaultDescription()
	date := model.DateOf(w.Date)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO withdrawals (id, amount, date, kind, description, expense_id, revenue_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.Amount.String(), w.Date.UTC(), string(w.Kind), w.Description,
		w.ExpenseID, w.RevenueID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("withdrawal %s: %w", w.ID, common.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to save withdrawal: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO transactions (
			id, description, amount, date, type, category,
			sub_category, channel, custom_channel, installments
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, '', 1)`,
		w.ExpenseID, desc, w.Amount.String(), date.String(),
		string(model.TypeProfessional), string(model.CategoryFixed),
		string(model.SubOther), string(model.ChannelCash),
	)
	if err != nil {
		return fmt.Errorf("failed to save withdrawal expense: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO revenues (id, description, amount, date, payment_method, type)
		VALUES (?, ?, ?, ?, ?, ?)`,
		w.RevenueID, desc, w.Amount.String(), date.String(),
		string(model.MethodPix), string(model.TypePersonal),
	)
	if err != nil {
		return fmt.Errorf("failed to save withdrawal revenue: %w", err)
	}

	return tx.Commit()
}

// GetWithdrawal retrieves a withdrawal by id.
func (s *SQLiteStorage) GetWithdrawal(ctx context.Context, id string) (*model.Withdrawal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, amount, date, kind, description, expense_id, revenue_id
		FROM withdrawals WHERE id = ?`, id)

	w, err := scanWithdrawal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("withdrawal %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// ListWithdrawals returns all withdrawals, most recent first.
func (s *SQLiteStorage) ListWithdrawals(ctx context.Context) ([]model.Withdrawal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, amount, date, kind, description, expense_id, revenue_id
		FROM withdrawals ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var withdrawals []model.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, err
		}
		withdrawals = append(withdrawals, *w)
	}
	return withdrawals, rows.Err()
}

// DeleteWithdrawal reverses a withdrawal, removing it and both paired records
// in one transaction.
func (s *SQLiteStorage) DeleteWithdrawal(ctx context.Context, id string) error {
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

	var expenseID, revenueID string
	err = tx.QueryRowContext(ctx,
		`SELECT expense_id, revenue_id FROM withdrawals WHERE id = ?`, id).
		Scan(&expenseID, &revenueID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("withdrawal %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to load withdrawal: %w", err)
	}

	if err := deletePair(ctx, tx, id, expenseID, revenueID); err != nil {
		return err
	}
	return tx.Commit()
}

// cascadeFromExpense removes the withdrawal and mirrored revenue linked to an
// already-deleted expense transaction, if any.
func cascadeFromExpense(ctx context.Context, tx *sql.Tx, expenseID string) error {
	var withdrawalID, revenueID string
	err := tx.QueryRowContext(ctx,
		`SELECT id, revenue_id FROM withdrawals WHERE expense_id = ?`, expenseID).
		Scan(&withdrawalID, &revenueID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up withdrawal pair: %w", err)
	}
	return deletePair(ctx, tx, withdrawalID, "", revenueID)
}

// cascadeFromRevenue removes the withdrawal and mirrored expense linked to an
// already-deleted personal revenue, if any.
func cascadeFromRevenue(ctx context.Context, tx *sql.Tx, revenueID string) error {
	var withdrawalID, expenseID string
	err := tx.QueryRowContext(ctx,
		`SELECT id, expense_id FROM withdrawals WHERE revenue_id = ?`, revenueID).
		Scan(&withdrawalID, &expenseID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up withdrawal pair: %w", err)
	}
	return deletePair(ctx, tx, withdrawalID, expenseID, "")
}

// deletePair deletes a withdrawal row and whichever paired record ids are
// still present. Empty ids are skipped (that side is already gone).
func deletePair(ctx context.Context, tx *sql.Tx, withdrawalID, expenseID, revenueID string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM withdrawals WHERE id = ?`, withdrawalID); err != nil {
		return fmt.Errorf("failed to delete withdrawal: %w", err)
	}
	if expenseID != "" {
		if _, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, expenseID); err != nil {
			return fmt.Errorf("failed to delete withdrawal expense: %w", err)
		}
	}
	if revenueID != "" {
		if _, err := tx.ExecContext(ctx, `DELETE FROM revenues WHERE id = ?`, revenueID); err != nil {
			return fmt.Errorf("failed to delete withdrawal revenue: %w", err)
		}
	}
	return nil
}

func scanWithdrawal(row rowScanner) (*model.Withdrawal, error) {
	var (
		w      model.Withdrawal
		amount string
		kind   string
		date   time.Time
	)
	err := row.Scan(&w.ID, &amount, &date, &kind, &w.Description, &w.ExpenseID, &w.RevenueID)
	if err != nil {
		return nil, err
	}

	w.Amount, err = parseStoredAmount(amount)
	if err != nil {
		return nil, fmt.Errorf("withdrawal %s: %w", w.ID, err)
	}
	w.Date = date
	w.Kind = model.WithdrawalKind(kind)
	return &w, nil
}
