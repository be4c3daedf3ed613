package storage

import (
	"context"
	"fmt"

	"github.com/glowbooks/glow/internal/model"
)

// RestoreSnapshot replaces the entire persisted state with the snapshot's
// contents in a single database transaction. Existing records are dropped;
// a failure part-way leaves the previous state untouched.
func (s *SQLiteStorage) RestoreSnapshot(ctx context.Context, snap *model.Snapshot) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if snap == nil {
		return fmt.Errorf("%w: snapshot", ErrNilParameter)
	}

	for i := range snap.Transactions {
		if err := snap.Transactions[i].Validate(); err != nil {
			return fmt.Errorf("snapshot transaction %d: %w", i, err)
		}
	}
	for i := range snap.Revenues {
		if err := snap.Revenues[i].Validate(); err != nil {
			return fmt.Errorf("snapshot revenue %d: %w", i, err)
		}
	}
	for i := range snap.Withdrawals {
		if err := snap.Withdrawals[i].Validate(); err != nil {
			return fmt.Errorf("snapshot withdrawal %d: %w", i, err)
		}
	}
	if err := snap.Distribution.Validate(); err != nil {
		return fmt.Errorf("snapshot distribution: %w", err)
	}
	if err := snap.ProLabore.Validate(); err != nil {
		return fmt.Errorf("snapshot pro-labore settings: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"withdrawals", "transactions", "revenues"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, txn := range snap.Transactions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO transactions (
				id, description, amount, date, type, category,
				sub_category, channel, custom_channel, installments
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			txn.ID, txn.Description, txn.Amount.String(), txn.Date.String(),
			string(txn.Type), string(txn.Category), string(txn.SubCategory),
			string(txn.Channel), txn.CustomChannel, txn.Installments,
		)
		if err != nil {
			return fmt.Errorf("failed to restore transaction %s: %w", txn.ID, err)
		}
	}

	for _, rev := range snap.Revenues {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO revenues (id, description, amount, date, payment_method, type)
			VALUES (?, ?, ?, ?, ?, ?)`,
			rev.ID, rev.Description, rev.Amount.String(), rev.Date.String(),
			string(rev.Method), string(rev.Type),
		)
		if err != nil {
			return fmt.Errorf("failed to restore revenue %s: %w", rev.ID, err)
		}
	}

	for _, w := range snap.Withdrawals {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO withdrawals (id, amount, date, kind, description, expense_id, revenue_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			w.ID, w.Amount.String(), w.Date.UTC(), string(w.Kind), w.Description,
			w.ExpenseID, w.RevenueID,
		)
		if err != nil {
			return fmt.Errorf("failed to restore withdrawal %s: %w", w.ID, err)
		}
	}

	isCustom := 0
	if snap.Distribution.IsCustom {
		isCustom = 1
	}
	startDate := ""
	if !snap.ProLabore.StartDate.IsZero() {
		startDate = snap.ProLabore.StartDate.String()
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE settings SET
			frequency = ?, payout_mode = ?, fixed_value = ?, start_date = ?,
			profit_cycle = ?, dist_is_custom = ?, dist_fixed = ?,
			dist_variable = ?, dist_profit = ?, dist_investment = ?,
			dist_pro_labore = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = 1`,
		string(snap.ProLabore.Frequency), string(snap.ProLabore.Mode),
		snap.ProLabore.FixedValue.String(), startDate, int(snap.ProLabore.Cycle),
		isCustom, snap.Distribution.Fixed.String(), snap.Distribution.Variable.String(),
		snap.Distribution.Profit.String(), snap.Distribution.Investment.String(),
		snap.Distribution.ProLabore.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to restore settings: %w", err)
	}

	return tx.Commit()
}
