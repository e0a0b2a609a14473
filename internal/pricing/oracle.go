package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceForDay computes the flash-sale price for a given day:
//
//	basePrice * (1 + rate) ^ daysElapsed
//
// where daysElapsed counts whole calendar days from baseDate to today and
// is clamped to zero for days before baseDate. The result is rounded to
// 2 decimal places, half up. Pure function of its inputs.
func PriceForDay(basePrice, rate decimal.Decimal, baseDate, today time.Time) decimal.Decimal {
	days := DaysElapsed(baseDate, today)
	factor := decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(days)))
	return basePrice.Mul(factor).Round(2)
}

// DaysElapsed returns the number of whole calendar days between baseDate
// and today, never negative. Both instants are truncated to their own
// calendar date first, so partial days do not count.
func DaysElapsed(baseDate, today time.Time) int {
	base := truncateToDate(baseDate)
	day := truncateToDate(today)
	days := int(day.Sub(base).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
