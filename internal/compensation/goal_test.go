package compensation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalculateAchievement(t *testing.T) {
	cases := []struct {
		name           string
		total, goal    int64
		wantPct        int
		wantRemaining  int64
		wantGoalSet    bool
	}{
		{"halfway", 150000, 300000, 50, 150000, true},
		{"exceeded", 400000, 300000, 133, 0, true},
		{"exact", 300000, 300000, 100, 0, true},
		{"nothing earned", 0, 300000, 0, 300000, true},
		{"rounds to nearest", 1, 3, 33, 2, true},
		{"zero goal", 50000, 0, 0, 0, false},
		{"negative goal", 50000, -100, 0, 0, false},
	}
	for _, c := range cases {
		got := CalculateAchievement(decimal.NewFromInt(c.total), decimal.NewFromInt(c.goal))
		if got.Percentage != c.wantPct {
			t.Errorf("%s: Percentage = %d, want %d", c.name, got.Percentage, c.wantPct)
		}
		if !got.Remaining.Equal(decimal.NewFromInt(c.wantRemaining)) {
			t.Errorf("%s: Remaining = %s, want %d", c.name, got.Remaining, c.wantRemaining)
		}
		if got.GoalSet != c.wantGoalSet {
			t.Errorf("%s: GoalSet = %v, want %v", c.name, got.GoalSet, c.wantGoalSet)
		}
	}
}

func TestChartSegments(t *testing.T) {
	// With a goal the ring has achieved + remaining slices.
	segs := ChartSegments(decimal.NewFromInt(150000), decimal.NewFromInt(300000))
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if !segs[0].Value.Equal(decimal.NewFromInt(150000)) || !segs[1].Value.Equal(decimal.NewFromInt(150000)) {
		t.Errorf("segments = %v", segs)
	}

	// No goal: the achieved amount fills the whole ring.
	segs = ChartSegments(decimal.NewFromInt(50000), decimal.Zero)
	if len(segs) != 1 || !segs[0].Value.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("no-goal segments = %v, want single 50000 slice", segs)
	}

	// No goal and nothing earned: floor of 1 avoids a degenerate empty ring.
	segs = ChartSegments(decimal.Zero, decimal.Zero)
	if len(segs) != 1 || !segs[0].Value.Equal(decimal.NewFromInt(1)) {
		t.Errorf("empty-ring segments = %v, want single slice of 1", segs)
	}

	// Goal surpassed: remaining clamps at zero.
	segs = ChartSegments(decimal.NewFromInt(400000), decimal.NewFromInt(300000))
	if !segs[1].Value.IsZero() {
		t.Errorf("remaining = %s, want 0", segs[1].Value)
	}
}

func TestDefaultGoal(t *testing.T) {
	monthly := PayConfig{PayType: PayTypeMonthly, PayRate: decimal.NewFromInt(330000)}
	if got := DefaultGoal(monthly); !got.Equal(decimal.NewFromInt(330000)) {
		t.Errorf("monthly default goal = %s, want 330000", got)
	}

	hourly := PayConfig{PayType: PayTypeHourly, PayRate: decimal.NewFromInt(2000)}
	if got := DefaultGoal(hourly); !got.Equal(decimal.NewFromInt(352000)) {
		t.Errorf("hourly default goal = %s, want 352000", got)
	}
}

func TestEffectiveGoal(t *testing.T) {
	cfg := PayConfig{
		PayType: PayTypeHourly,
		PayRate: decimal.NewFromInt(2000),
		Goal:    decimal.NewFromInt(250000),
	}
	if got := EffectiveGoal(cfg); !got.Equal(decimal.NewFromInt(250000)) {
		t.Errorf("stored goal ignored: got %s", got)
	}

	cfg.Goal = decimal.Zero
	if got := EffectiveGoal(cfg); !got.Equal(decimal.NewFromInt(352000)) {
		t.Errorf("default not applied: got %s", got)
	}
}
