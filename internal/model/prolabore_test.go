package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencyIntervalDays(t *testing.T) {
	tests := []struct {
		frequency   Frequency
		daysInMonth int
		want        int
	}{
		{FrequencyDaily, 31, 1},
		{FrequencyWeekly, 31, 7},
		{FrequencyFifteenDays, 31, 15},
		{FrequencyTwentyDays, 31, 20},
		{FrequencyMonthly, 31, 31},
		{FrequencyMonthly, 28, 28},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.frequency.IntervalDays(tt.daysInMonth))
		})
	}
}

func TestFrequencyDivisor(t *testing.T) {
	tests := []struct {
		frequency Frequency
		want      decimal.Decimal
	}{
		{FrequencyDaily, decimal.NewFromInt(30)},
		{FrequencyWeekly, decimal.NewFromInt(4)},
		{FrequencyFifteenDays, decimal.NewFromInt(2)},
		{FrequencyTwentyDays, decimal.NewFromFloat(1.5)},
		{FrequencyMonthly, decimal.NewFromInt(1)},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			assert.True(t, tt.frequency.Divisor().Equal(tt.want))
		})
	}
}

func TestProLaboreSettingsValidate(t *testing.T) {
	s := DefaultProLaboreSettings()
	require.NoError(t, s.Validate())

	s.Frequency = "BIWEEKLY"
	assert.Error(t, s.Validate())

	s = DefaultProLaboreSettings()
	s.Mode = ModeFixed
	assert.Error(t, s.Validate(), "fixed mode needs a positive fixed value")
	s.FixedValue = decimal.NewFromInt(2000)
	assert.NoError(t, s.Validate())

	s = DefaultProLaboreSettings()
	s.FixedValue = decimal.NewFromInt(-1)
	assert.Error(t, s.Validate())

	s = DefaultProLaboreSettings()
	s.StartDate = NewDate(2024, time.April, 31)
	assert.Error(t, s.Validate())
	s.StartDate = NewDate(2024, time.April, 30)
	assert.NoError(t, s.Validate())

	s = DefaultProLaboreSettings()
	s.Cycle = 4
	assert.Error(t, s.Validate())
}

func TestDefaultProLaboreSettings(t *testing.T) {
	s := DefaultProLaboreSettings()

	assert.Equal(t, FrequencyWeekly, s.Frequency)
	assert.Equal(t, ModePercent, s.Mode)
	assert.Equal(t, ProfitCycle(6), s.Cycle)
	assert.True(t, s.StartDate.IsZero())
}
