package engine

import "github.com/shopspring/decimal"

// HealthTier is the qualitative band a month's margin falls into.
type HealthTier string

const (
	HealthNoData    HealthTier = "no_data"
	HealthCritical  HealthTier = "critical"
	HealthLoss      HealthTier = "loss"
	HealthCaution   HealthTier = "caution"
	HealthHealthy   HealthTier = "healthy"
	HealthExcellent HealthTier = "excellent"
)

// HealthStatus is the classified state of a month's finances.
type HealthStatus struct {
	Tier  HealthTier
	Label string
}

// ClassifyHealth bands the profit margin: negative is a loss, under 20% needs
// caution, under 50% is healthy, anything above is excellent. A month with no
// movement at all has no data; expenses with zero revenue are critical.
func ClassifyHealth(revenue, expense decimal.Decimal) HealthStatus {
	if revenue.IsZero() && expense.IsZero() {
		return HealthStatus{Tier: HealthNoData, Label: "No data"}
	}
	if revenue.IsZero() {
		return HealthStatus{Tier: HealthCritical, Label: "Critical"}
	}

	margin := revenue.Sub(expense).Div(revenue).Mul(decimal.NewFromInt(100))
	switch {
	case margin.IsNegative():
		return HealthStatus{Tier: HealthLoss, Label: "Loss"}
	case margin.LessThan(decimal.NewFromInt(20)):
		return HealthStatus{Tier: HealthCaution, Label: "Caution"}
	case margin.LessThan(decimal.NewFromInt(50)):
		return HealthStatus{Tier: HealthHealthy, Label: "Healthy"}
	default:
		return HealthStatus{Tier: HealthExcellent, Label: "Excellent"}
	}
}
