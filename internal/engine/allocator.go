package engine

import (
	"github.com/shopspring/decimal"

	"github.com/glowbooks/glow/internal/model"
)

// Bucket names an allocation slot in the smart distribution.
type Bucket string

const (
	BucketFixed      Bucket = "fixed"
	BucketVariable   Bucket = "variable"
	BucketProfit     Bucket = "profit"
	BucketInvestment Bucket = "investment"
	BucketProLabore  Bucket = "proLabore"
)

// BucketOrder is the display order of the allocation buckets.
var BucketOrder = []Bucket{BucketFixed, BucketVariable, BucketProfit, BucketInvestment, BucketProLabore}

// Allocation is one bucket's share of the distributed revenue.
type Allocation struct {
	Percent decimal.Decimal
	Amount  decimal.Decimal
	Label   string
	Items   string
}

// Distribute splits total revenue across the five budget buckets using the
// config's percentages (defaults unless IsCustom). The percentages are
// applied as given; nothing forces them to sum to 100.
func Distribute(totalRevenue decimal.Decimal, config model.DistributionConfig) map[Bucket]Allocation {
	percents := config.Effective()
	hundred := decimal.NewFromInt(100)

	share := func(percent decimal.Decimal, label, items string) Allocation {
		return Allocation{
			Percent: percent,
			Amount:  totalRevenue.Mul(percent).Div(hundred),
			Label:   label,
			Items:   items,
		}
	}

	return map[Bucket]Allocation{
		BucketFixed:      share(percents.Fixed, "Fixed costs", "Rent, water, power, internet"),
		BucketVariable:   share(percents.Variable, "Variable costs", "Gel, supplies, card fees"),
		BucketProfit:     share(percents.Profit, "Profit reserve", "Emergency fund"),
		BucketInvestment: share(percents.Investment, "Investments", "Courses, equipment"),
		BucketProLabore:  share(percents.ProLabore, "Pro-labore", "Owner compensation"),
	}
}
