// Package compensation derives worked hours, salary estimates, and
// goal-achievement figures from attendance records and a user's pay
// configuration. Every function is pure: no clock reads, no locale, no
// mutation of inputs, so results are reproducible for a fixed snapshot.
package compensation

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayType string

const (
	PayTypeHourly  PayType = "HOURLY"
	PayTypeMonthly PayType = "MONTHLY"
)

func (p PayType) Valid() bool {
	return p == PayTypeHourly || p == PayTypeMonthly
}

// MonthlyWorkDays is the fixed divisor used to apportion a monthly salary
// into a per-day share.
const MonthlyWorkDays = 22

// PayConfig is a user's pay configuration. Amounts are whole currency units.
type PayConfig struct {
	PayType PayType
	PayRate decimal.Decimal
	Goal    decimal.Decimal
}

// Record is the calendar-date/time-of-day snapshot of one attendance entry.
// Date is "YYYY-MM-DD", StartTime and EndTime are "HH:MM" (seconds accepted).
// The strings are interpreted in a fixed calendar with no time zone.
type Record struct {
	UserID       string
	Date         string
	StartTime    string
	EndTime      string
	BreakMinutes int
}

// DailyInfo is the derived result for a single record. Never persisted.
type DailyInfo struct {
	WorkHours   float64
	DailySalary decimal.Decimal
}

const dateLayout = "2006-01-02"

var timeLayouts = []string{"15:04", "15:04:05"}

func parseInstant(date, clock string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(dateLayout+" "+layout, date+" "+clock); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CalculateDailyInfo computes worked hours and the daily salary estimate for
// one record. It is total over its input domain: a nil config or an
// unparsable date/time degrades to a zero-valued result rather than failing.
//
// If the end instant is earlier than the start instant the shift is taken to
// cross midnight and the end is advanced by one calendar day. Break minutes
// are subtracted and the result is clamped at zero. No rounding happens here;
// formatting is a caller concern.
func CalculateDailyInfo(rec Record, cfg *PayConfig) DailyInfo {
	zero := DailyInfo{DailySalary: decimal.Zero}
	if cfg == nil {
		return zero
	}

	start, ok := parseInstant(rec.Date, rec.StartTime)
	if !ok {
		return zero
	}
	end, ok := parseInstant(rec.Date, rec.EndTime)
	if !ok {
		return zero
	}
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}

	hours := end.Sub(start).Hours() - float64(rec.BreakMinutes)/60
	if hours < 0 {
		hours = 0
	}

	var salary decimal.Decimal
	switch cfg.PayType {
	case PayTypeHourly:
		salary = decimal.NewFromFloat(hours).Mul(cfg.PayRate)
	case PayTypeMonthly:
		// A worked day yields the full daily share regardless of hours.
		if hours > 0 {
			salary = cfg.PayRate.Div(decimal.NewFromInt(MonthlyWorkDays))
		} else {
			salary = decimal.Zero
		}
	default:
		salary = decimal.Zero
	}

	return DailyInfo{WorkHours: hours, DailySalary: salary}
}

// CalculateTotalSalary sums the daily salary over all records. The sum is
// order-independent; a nil config or empty input yields zero.
func CalculateTotalSalary(records []Record, cfg *PayConfig) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(CalculateDailyInfo(rec, cfg).DailySalary)
	}
	return total
}
