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

func storedWithdrawal(id string) *model.Withdrawal {
	return &model.Withdrawal{
		ID:     id,
		Amount: decimal.NewFromInt(500),
		Date:   time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		Kind:   model.KindProLabore,
	}
}

func TestRecordWithdrawalCreatesPair(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	w := storedWithdrawal("w1")
	require.NoError(t, store.RecordWithdrawal(ctx, w))
	require.NotEmpty(t, w.ExpenseID)
	require.NotEmpty(t, w.RevenueID)

	expense, err := store.GetTransaction(ctx, w.ExpenseID)
	require.NoError(t, err)
	assert.Equal(t, model.TypeProfessional, expense.Type)
	assert.Equal(t, model.SubOther, expense.SubCategory)
	assert.Equal(t, "Pro-labore withdrawal", expense.Description)
	assert.True(t, expense.Amount.Equal(w.Amount))
	assert.Equal(t, model.NewDate(2024, time.January, 15), expense.Date)

	revenue, err := store.GetRevenue(ctx, w.RevenueID)
	require.NoError(t, err)
	assert.Equal(t, model.TypePersonal, revenue.Type)
	assert.True(t, revenue.Amount.Equal(w.Amount))

	got, err := store.GetWithdrawal(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, w.ExpenseID, got.ExpenseID)
	assert.Equal(t, w.RevenueID, got.RevenueID)
	assert.Equal(t, model.KindProLabore, got.Kind)
}

func TestRecordWithdrawalCustomDescription(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	w := storedWithdrawal("w1")
	w.Kind = model.KindProfit
	w.Description = "semester profit split"
	require.NoError(t, store.RecordWithdrawal(ctx, w))

	expense, err := store.GetTransaction(ctx, w.ExpenseID)
	require.NoError(t, err)
	assert.Equal(t, "semester profit split", expense.Description)
}

func TestDeleteWithdrawalRemovesPair(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	w := storedWithdrawal("w1")
	require.NoError(t, store.RecordWithdrawal(ctx, w))
	require.NoError(t, store.DeleteWithdrawal(ctx, "w1"))

	_, err := store.GetWithdrawal(ctx, "w1")
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = store.GetTransaction(ctx, w.ExpenseID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = store.GetRevenue(ctx, w.RevenueID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteExpenseCascadesToPair(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	w := storedWithdrawal("w1")
	require.NoError(t, store.RecordWithdrawal(ctx, w))
	require.NoError(t, store.DeleteTransaction(ctx, w.ExpenseID))

	_, err := store.GetWithdrawal(ctx, "w1")
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = store.GetRevenue(ctx, w.RevenueID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteRevenueCascadesToPair(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	w := storedWithdrawal("w1")
	require.NoError(t, store.RecordWithdrawal(ctx, w))
	require.NoError(t, store.DeleteRevenue(ctx, w.RevenueID))

	_, err := store.GetWithdrawal(ctx, "w1")
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = store.GetTransaction(ctx, w.ExpenseID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteUnpairedRecordsLeaveOthersAlone(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	w := storedWithdrawal("w1")
	require.NoError(t, store.RecordWithdrawal(ctx, w))
	require.NoError(t, store.SaveTransaction(ctx, storedTransaction("plain", model.NewDate(2024, time.January, 20))))

	// Deleting an ordinary expense never touches the withdrawal pair.
	require.NoError(t, store.DeleteTransaction(ctx, "plain"))

	_, err := store.GetWithdrawal(ctx, "w1")
	assert.NoError(t, err)
}

func TestListWithdrawalsOrder(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	first := storedWithdrawal("w1")
	first.Date = time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	second := storedWithdrawal("w2")
	second.Date = time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.RecordWithdrawal(ctx, first))
	require.NoError(t, store.RecordWithdrawal(ctx, second))

	got, err := store.ListWithdrawals(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "w2", got[0].ID)
	assert.Equal(t, "w1", got[1].ID)
}

func TestRecordWithdrawalDuplicate(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.RecordWithdrawal(ctx, storedWithdrawal("w1")))
	assert.ErrorIs(t, store.RecordWithdrawal(ctx, storedWithdrawal("w1")), common.ErrDuplicateEntry)
}
