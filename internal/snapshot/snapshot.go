// Package snapshot bridges the store and JSON backup files. A snapshot file
// round-trips the full persisted state losslessly.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/glowbooks/glow/internal/model"
	"github.com/glowbooks/glow/internal/service"
)

// Export assembles the current persisted state into a snapshot.
func Export(ctx context.Context, store service.Storage) (*model.Snapshot, error) {
	transactions, err := store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export transactions: %w", err)
	}
	revenues, err := store.ListRevenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export revenues: %w", err)
	}
	withdrawals, err := store.ListWithdrawals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export withdrawals: %w", err)
	}
	proLabore, err := store.GetProLaboreSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export pro-labore settings: %w", err)
	}
	distribution, err := store.GetDistributionConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export distribution config: %w", err)
	}

	return &model.Snapshot{
		Transactions: transactions,
		Revenues:     revenues,
		Withdrawals:  withdrawals,
		ProLabore:    proLabore,
		Distribution: distribution,
	}, nil
}

// WriteFile writes a snapshot as indented JSON.
func WriteFile(path string, snap *model.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// ReadFile loads a snapshot from a JSON backup file.
func ReadFile(path string) (*model.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}

// Import replaces the store's contents with a snapshot file's state.
func Import(ctx context.Context, store service.Storage, path string) error {
	snap, err := ReadFile(path)
	if err != nil {
		return err
	}
	return store.RestoreSnapshot(ctx, snap)
}
