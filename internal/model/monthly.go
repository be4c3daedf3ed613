package model

import "github.com/shopspring/decimal"

// MonthlyExpenseLine is one month's slice of a transaction, produced by the
// installment expander. It is derived, never stored.
type MonthlyExpenseLine struct {
	ID                 string          `json:"id"`
	TransactionID      string          `json:"transactionId"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	CurrentInstallment int             `json:"currentInstallment"`
	TotalInstallments  int             `json:"totalInstallments"`
	Date               Date            `json:"date"`
	Type               ExpenseType     `json:"type"`
	Category           Category        `json:"category"`
	SubCategory        SubCategory     `json:"subCategory"`
	Channel            Channel         `json:"channel"`
	CustomChannel      string          `json:"customChannel,omitempty"`
}
