package attendance

import (
	"strings"

	"github.com/attendly/attendance-backend-go/internal/compensation"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAttendanceRequest struct {
	Date         string `json:"date"`       // YYYY-MM-DD
	StartTime    string `json:"start_time"` // HH:MM
	EndTime      string `json:"end_time"`   // HH:MM
	BreakMinutes int    `json:"break_minutes"`
	Report       string `json:"report"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidTimeOfDay(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if !validator.IsValidTimeOfDay(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must be zero or greater",
		})
	}

	if validator.IsEmpty(r.Report) {
		errs = append(errs, validator.ValidationError{
			Field:   "report",
			Message: "report is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAttendanceRequest is the admin correction form. Absent fields are
// left untouched.
type UpdateAttendanceRequest struct {
	ID           string  `json:"-"`
	Date         *string `json:"date,omitempty"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	BreakMinutes *int    `json:"break_minutes,omitempty"`
	Report       *string `json:"report,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.StartTime != nil && !validator.IsValidTimeOfDay(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if r.EndTime != nil && !validator.IsValidTimeOfDay(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must be zero or greater",
		})
	}

	if r.Report != nil && validator.IsEmpty(*r.Report) {
		errs = append(errs, validator.ValidationError{
			Field:   "report",
			Message: "report cannot be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListQuery scopes and orders an attendance listing.
type ListQuery struct {
	Month     *string `json:"month,omitempty"` // YYYY-MM
	SortBy    string  `json:"sort_by"`         // date, work_hours, daily_salary
	SortOrder string  `json:"sort_order"`      // asc, desc
}

func (q *ListQuery) Validate() error {
	var errs validator.ValidationErrors

	if q.Month != nil && *q.Month != "" {
		if _, ok := validator.IsValidMonth(*q.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if q.SortBy != "" {
		validSortFields := []string{
			string(compensation.SortByDate),
			string(compensation.SortByWorkHours),
			string(compensation.SortByDailySalary),
		}
		if !validator.IsInSlice(q.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: date, work_hours, daily_salary",
			})
		}
	} else {
		q.SortBy = string(compensation.SortByDate)
	}

	if q.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(q.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
		q.SortOrder = strings.ToLower(q.SortOrder)
	} else {
		q.SortOrder = string(compensation.SortDesc)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Date         string          `json:"date"`
	StartTime    string          `json:"start_time"`
	EndTime      string          `json:"end_time"`
	BreakMinutes int             `json:"break_minutes"`
	Report       string          `json:"report"`
	WorkHours    float64         `json:"work_hours"`
	DailySalary  decimal.Decimal `json:"daily_salary"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

// MonthlySummary carries the aggregate figures for the listed records,
// derived against the displayed user's pay configuration.
type MonthlySummary struct {
	TotalHours  float64                `json:"total_hours"`
	TotalSalary decimal.Decimal        `json:"total_salary"`
	MonthlyGoal decimal.Decimal        `json:"monthly_goal"`
	GoalSet     bool                   `json:"goal_set"`
	Achievement int                    `json:"achievement_percentage"`
	Remaining   decimal.Decimal        `json:"remaining"`
	Chart       []compensation.Segment `json:"chart"`
}

type ListAttendanceResponse struct {
	Attendances []AttendanceResponse `json:"attendances"`
	Summary     MonthlySummary       `json:"summary"`
}
