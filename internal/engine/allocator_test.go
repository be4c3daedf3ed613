package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowbooks/glow/internal/model"
)

func TestDistribute_Defaults(t *testing.T) {
	got := Distribute(decimal.NewFromInt(1000), model.DefaultDistribution())

	require.Len(t, got, 5)

	tests := []struct {
		bucket      Bucket
		wantPercent float64
		wantAmount  float64
	}{
		{BucketFixed, 12.3, 123},
		{BucketVariable, 20.0, 200},
		{BucketProfit, 10.0, 100},
		{BucketInvestment, 10.0, 100},
		{BucketProLabore, 47.7, 477},
	}
	for _, tt := range tests {
		a := got[tt.bucket]
		assert.True(t, a.Percent.Equal(decimal.NewFromFloat(tt.wantPercent)),
			"%s percent: want %v, got %s", tt.bucket, tt.wantPercent, a.Percent)
		assert.True(t, a.Amount.Equal(decimal.NewFromFloat(tt.wantAmount)),
			"%s amount: want %v, got %s", tt.bucket, tt.wantAmount, a.Amount)
		assert.NotEmpty(t, a.Label)
	}
}

func TestDistribute_IgnoresCustomValuesUnlessFlagged(t *testing.T) {
	config := model.DistributionConfig{
		IsCustom: false,
		// Custom values present but the flag is off.
		Fixed:      decimal.NewFromInt(50),
		Variable:   decimal.NewFromInt(50),
		Profit:     decimal.Zero,
		Investment: decimal.Zero,
		ProLabore:  decimal.Zero,
	}

	got := Distribute(decimal.NewFromInt(1000), config)

	assert.True(t, got[BucketFixed].Amount.Equal(decimal.NewFromInt(123)),
		"defaults must apply when IsCustom is false")
}

func TestDistribute_CustomValues(t *testing.T) {
	config := model.DistributionConfig{
		IsCustom:   true,
		Fixed:      decimal.NewFromInt(25),
		Variable:   decimal.NewFromInt(25),
		Profit:     decimal.NewFromInt(20),
		Investment: decimal.NewFromInt(10),
		ProLabore:  decimal.NewFromInt(20),
	}

	got := Distribute(decimal.NewFromInt(400), config)

	assert.True(t, got[BucketFixed].Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, got[BucketProfit].Amount.Equal(decimal.NewFromInt(80)))
	assert.True(t, got[BucketProLabore].Amount.Equal(decimal.NewFromInt(80)))
}

func TestDistribute_PercentagesNeedNotSumToHundred(t *testing.T) {
	// The split is deliberately loose; nothing normalizes it.
	config := model.DistributionConfig{
		IsCustom:   true,
		Fixed:      decimal.NewFromInt(90),
		Variable:   decimal.NewFromInt(90),
		Profit:     decimal.NewFromInt(90),
		Investment: decimal.NewFromInt(90),
		ProLabore:  decimal.NewFromInt(90),
	}

	got := Distribute(decimal.NewFromInt(100), config)

	for _, bucket := range BucketOrder {
		assert.True(t, got[bucket].Amount.Equal(decimal.NewFromInt(90)),
			"%s should get 90%% of 100 as configured", bucket)
	}
}

func TestDistribute_ZeroRevenue(t *testing.T) {
	got := Distribute(decimal.Zero, model.DefaultDistribution())

	for _, bucket := range BucketOrder {
		assert.True(t, got[bucket].Amount.IsZero())
	}
}
