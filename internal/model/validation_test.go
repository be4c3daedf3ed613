package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowbooks/glow/internal/common"
)

func validTransaction() Transaction {
	return Transaction{
		ID:           "t1",
		Description:  "acetone",
		Amount:       decimal.NewFromInt(45),
		Date:         NewDate(2024, time.January, 10),
		Type:         TypeProfessional,
		Category:     CategoryVariable,
		SubCategory:  SubSupplies,
		Channel:      ChannelNubank,
		Installments: 1,
	}
}

func TestTransactionValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Transaction)
		wantField string
	}{
		{
			name:   "valid transaction",
			mutate: func(*Transaction) {},
		},
		{
			name:      "missing id",
			mutate:    func(tr *Transaction) { tr.ID = "" },
			wantField: "id",
		},
		{
			name:      "missing description",
			mutate:    func(tr *Transaction) { tr.Description = "" },
			wantField: "description",
		},
		{
			name:      "zero amount",
			mutate:    func(tr *Transaction) { tr.Amount = decimal.Zero },
			wantField: "amount",
		},
		{
			name:      "negative amount",
			mutate:    func(tr *Transaction) { tr.Amount = decimal.NewFromInt(-10) },
			wantField: "amount",
		},
		{
			name:      "impossible date",
			mutate:    func(tr *Transaction) { tr.Date = NewDate(2024, time.February, 30) },
			wantField: "date",
		},
		{
			name:      "unknown type",
			mutate:    func(tr *Transaction) { tr.Type = "BUSINESS" },
			wantField: "type",
		},
		{
			name:      "unknown category",
			mutate:    func(tr *Transaction) { tr.Category = "RECURRING" },
			wantField: "category",
		},
		{
			name:      "unknown sub-category",
			mutate:    func(tr *Transaction) { tr.SubCategory = "GROCERIES" },
			wantField: "subCategory",
		},
		{
			name:      "unknown channel",
			mutate:    func(tr *Transaction) { tr.Channel = "ITAU" },
			wantField: "channel",
		},
		{
			name:      "zero installments",
			mutate:    func(tr *Transaction) { tr.Installments = 0 },
			wantField: "installments",
		},
		{
			name:      "negative installments",
			mutate:    func(tr *Transaction) { tr.Installments = -3 },
			wantField: "installments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := validTransaction()
			tt.mutate(&tr)

			err := tr.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.True(t, common.IsValidation(err), "want validation error, got %v", err)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func validRevenue() Revenue {
	return Revenue{
		ID:          "r1",
		Description: "gel nails",
		Amount:      decimal.NewFromInt(120),
		Date:        NewDate(2024, time.January, 12),
		Method:      MethodPix,
		Type:        TypeProfessional,
	}
}

func TestRevenueValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Revenue)
		wantField string
	}{
		{
			name:   "valid revenue",
			mutate: func(*Revenue) {},
		},
		{
			name:      "missing id",
			mutate:    func(r *Revenue) { r.ID = "" },
			wantField: "id",
		},
		{
			name:      "missing description",
			mutate:    func(r *Revenue) { r.Description = "" },
			wantField: "description",
		},
		{
			name:      "zero amount",
			mutate:    func(r *Revenue) { r.Amount = decimal.Zero },
			wantField: "amount",
		},
		{
			name:      "invalid date",
			mutate:    func(r *Revenue) { r.Date = Date{} },
			wantField: "date",
		},
		{
			name:      "unknown payment method",
			mutate:    func(r *Revenue) { r.Method = "CHECK" },
			wantField: "paymentMethod",
		},
		{
			name:      "unknown type",
			mutate:    func(r *Revenue) { r.Type = "" },
			wantField: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRevenue()
			tt.mutate(&r)

			err := r.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.True(t, common.IsValidation(err), "want validation error, got %v", err)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func validWithdrawal() Withdrawal {
	return Withdrawal{
		ID:     "w1",
		Amount: decimal.NewFromInt(200),
		Date:   time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		Kind:   KindProLabore,
	}
}

func TestWithdrawalValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Withdrawal)
		wantField string
	}{
		{
			name:   "valid withdrawal",
			mutate: func(*Withdrawal) {},
		},
		{
			name:      "missing id",
			mutate:    func(w *Withdrawal) { w.ID = "" },
			wantField: "id",
		},
		{
			name:      "zero amount",
			mutate:    func(w *Withdrawal) { w.Amount = decimal.Zero },
			wantField: "amount",
		},
		{
			name:      "missing date",
			mutate:    func(w *Withdrawal) { w.Date = time.Time{} },
			wantField: "date",
		},
		{
			name:      "unknown kind",
			mutate:    func(w *Withdrawal) { w.Kind = "DIVIDEND" },
			wantField: "kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := validWithdrawal()
			tt.mutate(&w)

			err := w.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.True(t, common.IsValidation(err), "want validation error, got %v", err)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestWithdrawalDefaultDescription(t *testing.T) {
	w := validWithdrawal()
	assert.Equal(t, "Pro-labore withdrawal", w.DefaultDescription())

	w.Kind = KindProfit
	assert.Equal(t, "Profit withdrawal", w.DefaultDescription())

	w.Description = "vacation fund"
	assert.Equal(t, "vacation fund", w.DefaultDescription())
}
