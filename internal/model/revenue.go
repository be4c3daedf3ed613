package model

import (
	"github.com/shopspring/decimal"

	"github.com/glowbooks/glow/internal/common"
)

// PaymentMethod identifies how a revenue entry was received.
type PaymentMethod string

const (
	MethodPix  PaymentMethod = "PIX"
	MethodCard PaymentMethod = "CARD"
	MethodCash PaymentMethod = "CASH"
)

// Valid reports whether the payment method is a known value.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodPix, MethodCard, MethodCash:
		return true
	}
	return false
}

// Revenue is a money-in record. A TypePersonal revenue represents money moved
// to the owner's personal ledger, mirroring a withdrawal.
type Revenue struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        Date            `json:"date"`
	Method      PaymentMethod   `json:"paymentMethod"`
	Type        ExpenseType     `json:"type"`
}

// Validate checks the revenue's required fields.
func (r *Revenue) Validate() error {
	if r.ID == "" {
		return common.NewValidationError("id", "is required")
	}
	if r.Description == "" {
		return common.NewValidationError("description", "is required")
	}
	if !r.Amount.IsPositive() {
		return common.NewValidationError("amount", "must be positive")
	}
	if !r.Date.Valid() {
		return common.NewValidationError("date", "is not a valid calendar date")
	}
	if !r.Method.Valid() {
		return common.NewValidationError("paymentMethod", "must be PIX, CARD or CASH")
	}
	if !r.Type.Valid() {
		return common.NewValidationError("type", "must be PROFESSIONAL or PERSONAL")
	}
	return nil
}
