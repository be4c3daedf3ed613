package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/glowbooks/glow/internal/model"
)

// FilterMonth returns the revenues dated in the given month, ordered by date
// descending, stable on ties. The input slice is left untouched.
func FilterMonth(revenues []model.Revenue, month model.YearMonth) []model.Revenue {
	out := make([]model.Revenue, 0, len(revenues))
	for _, r := range revenues {
		if month.Contains(r.Date) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Date.Before(out[i].Date)
	})
	return out
}

// RevenuesOfType keeps only revenues of the given ledger type, preserving order.
func RevenuesOfType(revenues []model.Revenue, t model.ExpenseType) []model.Revenue {
	out := make([]model.Revenue, 0, len(revenues))
	for _, r := range revenues {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

// SumRevenues totals a set of revenue entries.
func SumRevenues(revenues []model.Revenue) decimal.Decimal {
	total := decimal.Zero
	for _, r := range revenues {
		total = total.Add(r.Amount)
	}
	return total
}
