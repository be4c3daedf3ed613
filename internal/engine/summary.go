package engine

import (
	"github.com/shopspring/decimal"

	"github.com/glowbooks/glow/internal/model"
)

// MonthSummary aggregates a month's studio figures.
type MonthSummary struct {
	Revenue decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
	Margin  decimal.Decimal // percent; zero when there is no revenue
	Health  HealthStatus
}

// SummarizeMonth computes the studio summary from month-scoped expense lines
// and revenues. Only PROFESSIONAL entries count; personal movements never
// affect the studio's margin.
func SummarizeMonth(lines []model.MonthlyExpenseLine, revenues []model.Revenue) MonthSummary {
	revenue := SumRevenues(RevenuesOfType(revenues, model.TypeProfessional))

	expense := decimal.Zero
	for _, l := range lines {
		if l.Type == model.TypeProfessional {
			expense = expense.Add(l.Amount)
		}
	}

	net := revenue.Sub(expense)
	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = net.Div(revenue).Mul(decimal.NewFromInt(100))
	}

	return MonthSummary{
		Revenue: revenue,
		Expense: expense,
		Net:     net,
		Margin:  margin,
		Health:  ClassifyHealth(revenue, expense),
	}
}

// GroupBySubCategory totals expense lines per sub-category tag.
func GroupBySubCategory(lines []model.MonthlyExpenseLine) map[model.SubCategory]decimal.Decimal {
	totals := make(map[model.SubCategory]decimal.Decimal)
	for _, l := range lines {
		totals[l.SubCategory] = totals[l.SubCategory].Add(l.Amount)
	}
	return totals
}
