package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/glowbooks/glow/internal/model"
)

// Suggestion is a forecasted pro-labore withdrawal: take Amount on Date.
type Suggestion struct {
	Date   model.Date
	Amount decimal.Decimal
}

// minSuggestion is the smallest amount worth suggesting, in currency units.
var minSuggestion = decimal.NewFromInt(1)

// ForecastProLabore walks the target month in payout-cadence steps and, at
// each evaluation day, suggests how much pro-labore could still be withdrawn.
//
// The suggestion at a day is bounded by a ceiling of percent of the revenue
// earned up to and including that day, net of what has already been
// withdrawn: the owner is never advised to take compensation the studio has
// not yet earned, nor amounts already taken. The ideal per-period slice is
// the monthly entitlement (percent of the ceiling in ModePercent, fixedValue
// in ModeFixed) divided by the cadence's smoothing divisor.
//
// revenues must already be filtered to the target month, and withdrawals must
// be the target month's withdrawals: the depletion ceiling is a monthly
// constraint. Iteration starts at the day of the month's earliest revenue,
// raised to startDate's day when startDate falls in the same month. Days that
// already carry a PRO_LABORE withdrawal produce no suggestion.
//
// With no revenue there is nothing to forecast and the result is empty.
// Results come back ordered by date descending.
func ForecastProLabore(
	month model.YearMonth,
	frequency model.Frequency,
	revenues []model.Revenue,
	withdrawals []model.Withdrawal,
	percent decimal.Decimal,
	mode model.PayoutMode,
	fixedValue decimal.Decimal,
	startDate model.Date,
) []Suggestion {
	if len(revenues) == 0 {
		return nil
	}

	firstRevenueDay := revenues[0].Date.Day
	for _, r := range revenues[1:] {
		if r.Date.Day < firstRevenueDay {
			firstRevenueDay = r.Date.Day
		}
	}
	effectiveStartDay := firstRevenueDay
	if month.Contains(startDate) && startDate.Day > effectiveStartDay {
		effectiveStartDay = startDate.Day
	}

	alreadyWithdrawn := decimal.Zero
	for _, w := range withdrawals {
		if w.Kind == model.KindProLabore {
			alreadyWithdrawn = alreadyWithdrawn.Add(w.Amount)
		}
	}

	daysInMonth := month.Days()
	interval := frequency.IntervalDays(daysInMonth)
	divisor := frequency.Divisor()
	hundred := decimal.NewFromInt(100)

	var suggestions []Suggestion
	for day := 1; day <= daysInMonth; day += interval {
		if day < effectiveStartDay {
			continue
		}

		// Revenue earned by end of this day.
		revenueUntilNow := decimal.Zero
		for _, r := range revenues {
			if r.Date.Day <= day {
				revenueUntilNow = revenueUntilNow.Add(r.Amount)
			}
		}
		if revenueUntilNow.IsZero() {
			continue
		}

		maxAvailable := revenueUntilNow.Mul(percent).Div(hundred)
		remainingAvailable := maxAvailable.Sub(alreadyWithdrawn)

		idealSlice := maxAvailable.Div(divisor)
		if mode == model.ModeFixed {
			idealSlice = fixedValue.Div(divisor)
		}

		suggested := decimal.Min(idealSlice, remainingAvailable)
		if suggested.LessThan(minSuggestion) {
			continue
		}

		if hasProLaboreOnDay(withdrawals, day) {
			continue
		}

		suggestions = append(suggestions, Suggestion{
			Date:   month.DateOf(day),
			Amount: suggested,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[j].Date.Before(suggestions[i].Date)
	})
	return suggestions
}

func hasProLaboreOnDay(withdrawals []model.Withdrawal, day int) bool {
	for _, w := range withdrawals {
		if w.Kind == model.KindProLabore && w.Date.Day() == day {
			return true
		}
	}
	return false
}
