package model

import (
	"github.com/shopspring/decimal"

	"github.com/glowbooks/glow/internal/common"
)

// Frequency is the pro-labore payout cadence.
type Frequency string

const (
	FrequencyDaily       Frequency = "DAILY"
	FrequencyWeekly      Frequency = "WEEKLY"
	FrequencyFifteenDays Frequency = "15_DAYS"
	FrequencyTwentyDays  Frequency = "20_DAYS"
	FrequencyMonthly     Frequency = "MONTHLY"
)

// Valid reports whether the frequency is a known cadence.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyFifteenDays, FrequencyTwentyDays, FrequencyMonthly:
		return true
	}
	return false
}

// IntervalDays returns the step between payout evaluation points. A monthly
// cadence evaluates exactly once, on the first day of the iteration.
func (f Frequency) IntervalDays(daysInMonth int) int {
	switch f {
	case FrequencyWeekly:
		return 7
	case FrequencyFifteenDays:
		return 15
	case FrequencyTwentyDays:
		return 20
	case FrequencyMonthly:
		return daysInMonth
	default:
		return 1
	}
}

// Divisor returns the factor that smooths a monthly entitlement into
// per-period slices for this cadence.
func (f Frequency) Divisor() decimal.Decimal {
	switch f {
	case FrequencyDaily:
		return decimal.NewFromInt(30)
	case FrequencyWeekly:
		return decimal.NewFromInt(4)
	case FrequencyFifteenDays:
		return decimal.NewFromInt(2)
	case FrequencyTwentyDays:
		return decimal.NewFromFloat(1.5)
	default:
		return decimal.NewFromInt(1)
	}
}

// PayoutMode selects how the ideal pro-labore slice is computed.
type PayoutMode string

const (
	// ModePercent derives the slice from the revenue earned so far.
	ModePercent PayoutMode = "PERCENT"
	// ModeFixed derives the slice from a fixed monthly value.
	ModeFixed PayoutMode = "FIXED"
)

// Valid reports whether the mode is a known value.
func (m PayoutMode) Valid() bool {
	return m == ModePercent || m == ModeFixed
}

// ProfitCycle is how many months accumulate before a profit distribution.
type ProfitCycle int

// Valid reports whether the cycle is one of the supported lengths.
func (c ProfitCycle) Valid() bool {
	switch c {
	case 1, 3, 6, 12:
		return true
	}
	return false
}

// ProLaboreSettings is the persisted payout configuration.
type ProLaboreSettings struct {
	Frequency  Frequency       `json:"frequency"`
	Mode       PayoutMode      `json:"mode"`
	FixedValue decimal.Decimal `json:"fixedValue"`
	StartDate  Date            `json:"startDate"`
	Cycle      ProfitCycle     `json:"profitCycle"`
}

// DefaultProLaboreSettings returns the settings used before any are saved.
func DefaultProLaboreSettings() ProLaboreSettings {
	return ProLaboreSettings{
		Frequency: FrequencyWeekly,
		Mode:      ModePercent,
		Cycle:     6,
	}
}

// Validate checks the settings hold known enum values.
func (s ProLaboreSettings) Validate() error {
	if !s.Frequency.Valid() {
		return common.NewValidationError("frequency", "is not a known cadence")
	}
	if !s.Mode.Valid() {
		return common.NewValidationError("mode", "must be PERCENT or FIXED")
	}
	if s.Mode == ModeFixed && !s.FixedValue.IsPositive() {
		return common.NewValidationError("fixedValue", "must be positive in FIXED mode")
	}
	if s.FixedValue.IsNegative() {
		return common.NewValidationError("fixedValue", "must not be negative")
	}
	if !s.StartDate.IsZero() && !s.StartDate.Valid() {
		return common.NewValidationError("startDate", "is not a valid calendar date")
	}
	if !s.Cycle.Valid() {
		return common.NewValidationError("profitCycle", "must be 1, 3, 6 or 12 months")
	}
	return nil
}
