package compensation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func hourlyConfig(rate int64) *PayConfig {
	return &PayConfig{PayType: PayTypeHourly, PayRate: decimal.NewFromInt(rate)}
}

func monthlyConfig(rate int64) *PayConfig {
	return &PayConfig{PayType: PayTypeMonthly, PayRate: decimal.NewFromInt(rate)}
}

func rec(date, start, end string, breakMin int) Record {
	return Record{Date: date, StartTime: start, EndTime: end, BreakMinutes: breakMin}
}

func TestCalculateDailyInfo_WorkHours(t *testing.T) {
	cases := []struct {
		name string
		rec  Record
		want float64
	}{
		{"plain day", rec("2025-03-10", "09:00", "18:00", 60), 8},
		{"no break", rec("2025-03-10", "09:00", "17:30", 0), 8.5},
		{"minute precision", rec("2025-03-10", "09:15", "17:45", 45), 7.75},
		{"midnight crossing", rec("2025-03-10", "22:00", "06:00", 0), 8},
		{"midnight crossing with break", rec("2025-03-10", "21:30", "05:30", 30), 7.5},
		{"break exceeds shift", rec("2025-03-10", "09:00", "10:00", 120), 0},
		{"zero-length shift", rec("2025-03-10", "09:00", "09:00", 0), 0},
		{"seconds accepted", rec("2025-03-10", "09:00:00", "17:00:00", 0), 8},
	}
	for _, c := range cases {
		got := CalculateDailyInfo(c.rec, hourlyConfig(1000))
		if math.Abs(got.WorkHours-c.want) > 1e-9 {
			t.Errorf("%s: WorkHours = %v, want %v", c.name, got.WorkHours, c.want)
		}
	}
}

func TestCalculateDailyInfo_DegradesToZero(t *testing.T) {
	cases := []struct {
		name string
		rec  Record
		cfg  *PayConfig
	}{
		{"nil config", rec("2025-03-10", "09:00", "18:00", 0), nil},
		{"malformed date", rec("not-a-date", "09:00", "18:00", 0), hourlyConfig(1500)},
		{"malformed start", rec("2025-03-10", "9am", "18:00", 0), hourlyConfig(1500)},
		{"malformed end", rec("2025-03-10", "09:00", "", 0), hourlyConfig(1500)},
	}
	for _, c := range cases {
		got := CalculateDailyInfo(c.rec, c.cfg)
		if got.WorkHours != 0 || !got.DailySalary.IsZero() {
			t.Errorf("%s: got %+v, want zero result", c.name, got)
		}
	}
}

func TestCalculateDailyInfo_HourlySalary(t *testing.T) {
	got := CalculateDailyInfo(rec("2025-03-10", "09:00", "18:00", 60), hourlyConfig(1500))
	if !got.DailySalary.Equal(decimal.NewFromInt(12000)) {
		t.Errorf("hourly salary = %s, want 12000", got.DailySalary)
	}
}

func TestCalculateDailyInfo_MonthlySalary(t *testing.T) {
	cfg := monthlyConfig(330000)

	// Any worked day yields the full daily share.
	for _, r := range []Record{
		rec("2025-03-10", "09:00", "18:00", 60),
		rec("2025-03-11", "09:00", "09:30", 0),
	} {
		got := CalculateDailyInfo(r, cfg)
		if !got.DailySalary.Equal(decimal.NewFromInt(15000)) {
			t.Errorf("monthly salary for %s = %s, want 15000", r.Date, got.DailySalary)
		}
	}

	// Zero worked hours yields nothing.
	got := CalculateDailyInfo(rec("2025-03-12", "09:00", "10:00", 120), cfg)
	if !got.DailySalary.IsZero() {
		t.Errorf("monthly salary with zero hours = %s, want 0", got.DailySalary)
	}
}

func TestCalculateDailyInfo_Idempotent(t *testing.T) {
	r := rec("2025-03-10", "22:00", "06:00", 30)
	cfg := hourlyConfig(2000)
	first := CalculateDailyInfo(r, cfg)
	second := CalculateDailyInfo(r, cfg)
	if first.WorkHours != second.WorkHours || !first.DailySalary.Equal(second.DailySalary) {
		t.Errorf("repeated invocation diverged: %+v vs %+v", first, second)
	}
}

func TestCalculateTotalSalary(t *testing.T) {
	cfg := hourlyConfig(1500)
	records := []Record{
		rec("2025-03-10", "09:00", "18:00", 60), // 8h -> 12000
		rec("2025-03-11", "09:00", "13:00", 0),  // 4h -> 6000
		rec("2025-03-12", "bad", "18:00", 0),    // unparsable -> 0
	}

	total := CalculateTotalSalary(records, cfg)
	if !total.Equal(decimal.NewFromInt(18000)) {
		t.Errorf("total = %s, want 18000", total)
	}

	// Order independence.
	reversed := []Record{records[2], records[1], records[0]}
	if !CalculateTotalSalary(reversed, cfg).Equal(total) {
		t.Error("total depends on record order")
	}

	if !CalculateTotalSalary(nil, cfg).IsZero() {
		t.Error("empty input should sum to zero")
	}
	if !CalculateTotalSalary(records, nil).IsZero() {
		t.Error("nil config should sum to zero")
	}
}
