package model

import (
	"github.com/shopspring/decimal"

	"github.com/glowbooks/glow/internal/common"
)

// DistributionConfig holds the percentage split applied to a month's revenue.
// The five percentages are deliberately not required to sum to 100; each can
// be adjusted independently and the allocator applies them as given.
type DistributionConfig struct {
	IsCustom   bool            `json:"isCustom"`
	Fixed      decimal.Decimal `json:"fixed"`
	Variable   decimal.Decimal `json:"variable"`
	Profit     decimal.Decimal `json:"profit"`
	Investment decimal.Decimal `json:"investment"`
	ProLabore  decimal.Decimal `json:"proLabore"`
}

// DefaultDistribution returns the automatic split: 12.3% fixed costs, 20%
// variable costs, 10% profit reserve, 10% investment, 47.7% pro-labore.
func DefaultDistribution() DistributionConfig {
	return DistributionConfig{
		IsCustom:   false,
		Fixed:      decimal.NewFromFloat(12.3),
		Variable:   decimal.NewFromFloat(20.0),
		Profit:     decimal.NewFromFloat(10.0),
		Investment: decimal.NewFromFloat(10.0),
		ProLabore:  decimal.NewFromFloat(47.7),
	}
}

// Effective returns the percentages the allocator should apply: the custom
// values when IsCustom is set, the defaults otherwise.
func (c DistributionConfig) Effective() DistributionConfig {
	if c.IsCustom {
		return c
	}
	return DefaultDistribution()
}

// Validate checks each percentage is non-negative. It does not check the sum.
func (c DistributionConfig) Validate() error {
	for _, p := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"fixed", c.Fixed},
		{"variable", c.Variable},
		{"profit", c.Profit},
		{"investment", c.Investment},
		{"proLabore", c.ProLabore},
	} {
		if p.value.IsNegative() {
			return common.NewValidationError(p.name, "percentage must not be negative")
		}
	}
	return nil
}
