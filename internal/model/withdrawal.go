package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/glowbooks/glow/internal/common"
)

// WithdrawalKind distinguishes owner compensation from profit distribution.
type WithdrawalKind string

const (
	// KindProLabore is the owner's periodic compensation withdrawal.
	KindProLabore WithdrawalKind = "PRO_LABORE"
	// KindProfit is a distribution from the accumulated profit reserve.
	KindProfit WithdrawalKind = "PROFIT"
)

// Valid reports whether the kind is a known value.
func (k WithdrawalKind) Valid() bool {
	return k == KindProLabore || k == KindProfit
}

// Withdrawal records money taken out of the studio. Every withdrawal is
// mirrored by a paired professional expense and personal revenue; ExpenseID
// and RevenueID reference them directly, and the store creates and removes
// all three records as one transaction.
type Withdrawal struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Kind        WithdrawalKind  `json:"kind"`
	Description string          `json:"description"`
	ExpenseID   string          `json:"expenseId"`
	RevenueID   string          `json:"revenueId"`
}

// DefaultDescription returns the description used for the paired records when
// the withdrawal itself carries none.
func (w *Withdrawal) DefaultDescription() string {
	if w.Description != "" {
		return w.Description
	}
	if w.Kind == KindProfit {
		return "Profit withdrawal"
	}
	return "Pro-labore withdrawal"
}

// Validate checks the withdrawal's required fields. The paired record ids are
// assigned by the store, not the caller.
func (w *Withdrawal) Validate() error {
	if w.ID == "" {
		return common.NewValidationError("id", "is required")
	}
	if !w.Amount.IsPositive() {
		return common.NewValidationError("amount", "must be positive")
	}
	if w.Date.IsZero() {
		return common.NewValidationError("date", "is required")
	}
	if !w.Kind.Valid() {
		return common.NewValidationError("kind", "must be PRO_LABORE or PROFIT")
	}
	return nil
}
