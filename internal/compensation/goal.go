package compensation

import "github.com/shopspring/decimal"

// Achievement relates an aggregate salary to a monthly goal.
//
// A goal of zero or less means "no goal set": GoalSet is false, Percentage is
// 0 and Remaining is 0. Callers render that state uniformly (percentage shown
// as unset, ring filled with the achieved total only) so the text and the
// chart never disagree.
type Achievement struct {
	Percentage int
	Remaining  decimal.Decimal
	GoalSet    bool
}

const (
	defaultGoalHoursPerDay = 8
)

// CalculateAchievement computes the achievement percentage and the amount
// still missing toward the goal. Percentage rounds to the nearest integer and
// may exceed 100.
func CalculateAchievement(totalSalary, monthlyGoal decimal.Decimal) Achievement {
	if monthlyGoal.Sign() <= 0 {
		return Achievement{Remaining: decimal.Zero}
	}

	remaining := monthlyGoal.Sub(totalSalary)
	if remaining.Sign() < 0 {
		remaining = decimal.Zero
	}

	pct := totalSalary.Div(monthlyGoal).Mul(decimal.NewFromInt(100)).Round(0)
	return Achievement{
		Percentage: int(pct.IntPart()),
		Remaining:  remaining,
		GoalSet:    true,
	}
}

// Segment is one slice of the goal ring.
type Segment struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// ChartSegments builds the goal-ring data. With a goal set it returns the
// achieved and remaining slices. Without one the whole ring is a single
// achieved slice; a floor of 1 keeps the ring from collapsing when nothing
// has been earned yet.
func ChartSegments(totalSalary, monthlyGoal decimal.Decimal) []Segment {
	if monthlyGoal.Sign() <= 0 {
		value := totalSalary
		if value.Sign() <= 0 {
			value = decimal.NewFromInt(1)
		}
		return []Segment{{Name: "achieved", Value: value}}
	}

	remaining := monthlyGoal.Sub(totalSalary)
	if remaining.Sign() < 0 {
		remaining = decimal.Zero
	}
	return []Segment{
		{Name: "achieved", Value: totalSalary},
		{Name: "remaining", Value: remaining},
	}
}

// DefaultGoal derives a monthly goal for users who never set one: the monthly
// salary itself, or for hourly workers an 8-hour day over the standard
// 22-day month.
func DefaultGoal(cfg PayConfig) decimal.Decimal {
	if cfg.PayType == PayTypeMonthly {
		return cfg.PayRate
	}
	return cfg.PayRate.
		Mul(decimal.NewFromInt(defaultGoalHoursPerDay)).
		Mul(decimal.NewFromInt(MonthlyWorkDays))
}

// EffectiveGoal returns the stored goal when positive, otherwise the default.
func EffectiveGoal(cfg PayConfig) decimal.Decimal {
	if cfg.Goal.Sign() > 0 {
		return cfg.Goal
	}
	return DefaultGoal(cfg)
}
