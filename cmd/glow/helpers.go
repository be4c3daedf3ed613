package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glowbooks/glow/internal/config"
	"github.com/glowbooks/glow/internal/model"
	"github.com/glowbooks/glow/internal/service"
	"github.com/glowbooks/glow/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/glow/glow.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// addMonthFlag registers the --month flag shared by month-scoped commands.
func addMonthFlag(cmd *cobra.Command) {
	cmd.Flags().String("month", "", "target month in YYYY-MM form (default: current month)")
}

// monthFromFlags resolves the --month flag, defaulting to the current month.
func monthFromFlags(cmd *cobra.Command) (model.YearMonth, error) {
	raw, _ := cmd.Flags().GetString("month")
	if raw == "" {
		return model.MonthOf(model.Today()), nil
	}
	return model.ParseYearMonth(raw)
}

// parseAmount parses a user-supplied currency amount.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return amount, nil
}

// money formats an amount with two decimal places for display.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
