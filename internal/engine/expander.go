// Package engine holds the derived financial computations: installment
// expansion, month-scoped revenue views, budget distribution, pro-labore
// forecasting and health classification. Every function is pure and never
// mutates its inputs.
package engine

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/glowbooks/glow/internal/model"
)

// ExpandMonth expands stored transactions into the expense lines they
// contribute to the given month. A transaction purchased in month P with N
// installments covers months P through P+N-1. FIXED expenses repeat their
// full amount each covered month; VARIABLE expenses divide their total evenly
// across the installments. Transactions outside the window are silently
// omitted. Lines come back ordered by date descending, stable on ties.
func ExpandMonth(transactions []model.Transaction, month model.YearMonth) []model.MonthlyExpenseLine {
	lines := make([]model.MonthlyExpenseLine, 0, len(transactions))

	for _, t := range transactions {
		installments := t.Installments
		if installments < 1 {
			// Validation rejects this upstream; clamp so a bad record can
			// never divide by zero here.
			installments = 1
		}

		monthsDiff := model.MonthsBetween(model.MonthOf(t.Date), month)
		if monthsDiff < 0 || monthsDiff >= installments {
			continue
		}

		amount := t.Amount
		if t.Category == model.CategoryVariable {
			amount = t.Amount.Div(decimal.NewFromInt(int64(installments)))
		}

		lines = append(lines, model.MonthlyExpenseLine{
			ID:                 fmt.Sprintf("%s-%d", t.ID, monthsDiff),
			TransactionID:      t.ID,
			Description:        t.Description,
			Amount:             amount,
			CurrentInstallment: monthsDiff + 1,
			TotalInstallments:  installments,
			Date:               t.Date,
			Type:               t.Type,
			Category:           t.Category,
			SubCategory:        t.SubCategory,
			Channel:            t.Channel,
			CustomChannel:      t.CustomChannel,
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[j].Date.Before(lines[i].Date)
	})
	return lines
}
