package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowbooks/glow/internal/common"
	"github.com/glowbooks/glow/internal/model"
)

func TestRestoreSnapshot(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	// Pre-existing state that the restore must wipe.
	require.NoError(t, store.SaveTransaction(ctx, storedTransaction("stale", model.NewDate(2023, time.June, 1))))

	snap := &model.Snapshot{
		Transactions: []model.Transaction{*storedTransaction("t1", model.NewDate(2024, time.January, 10))},
		Revenues:     []model.Revenue{*storedRevenue("r1", model.NewDate(2024, time.January, 12))},
		Withdrawals: []model.Withdrawal{{
			ID:        "w1",
			Amount:    decimal.NewFromInt(300),
			Date:      time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
			Kind:      model.KindProLabore,
			ExpenseID: "we1",
			RevenueID: "wr1",
		}},
		ProLabore: model.ProLaboreSettings{
			Frequency: model.FrequencyMonthly,
			Mode:      model.ModePercent,
			Cycle:     12,
		},
		Distribution: model.DistributionConfig{
			IsCustom:  true,
			Fixed:     decimal.NewFromInt(20),
			ProLabore: decimal.NewFromInt(80),
		},
	}
	require.NoError(t, store.RestoreSnapshot(ctx, snap))

	_, err := store.GetTransaction(ctx, "stale")
	assert.ErrorIs(t, err, common.ErrNotFound)

	transactions, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "t1", transactions[0].ID)

	w, err := store.GetWithdrawal(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "we1", w.ExpenseID)
	assert.Equal(t, "wr1", w.RevenueID)

	settings, err := store.GetProLaboreSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.FrequencyMonthly, settings.Frequency)
	assert.Equal(t, model.ProfitCycle(12), settings.Cycle)

	dist, err := store.GetDistributionConfig(ctx)
	require.NoError(t, err)
	assert.True(t, dist.IsCustom)
	assert.True(t, dist.ProLabore.Equal(decimal.NewFromInt(80)))
}

func TestRestoreSnapshotRejectsInvalidRecords(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTransaction(ctx, storedTransaction("keep", model.NewDate(2024, time.January, 5))))

	bad := *storedTransaction("t1", model.NewDate(2024, time.January, 10))
	bad.Installments = 0
	snap := &model.Snapshot{
		Transactions: []model.Transaction{bad},
		ProLabore:    model.DefaultProLaboreSettings(),
		Distribution: model.DefaultDistribution(),
	}

	err := store.RestoreSnapshot(ctx, snap)
	require.Error(t, err)
	assert.True(t, common.IsValidation(err))

	// Existing state untouched after a rejected restore.
	_, err = store.GetTransaction(ctx, "keep")
	assert.NoError(t, err)
}
