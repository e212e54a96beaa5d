package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// Month scoping happens in SQL with half-open date ranges so a record can
// never drift across a month boundary.
type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	Update(ctx context.Context, a Attendance) (Attendance, error)

	// ListByUser returns a user's records, optionally restricted to
	// [from, to). Passing zero times returns everything.
	ListByUser(ctx context.Context, userID string, from, to time.Time) ([]Attendance, error)

	// ListByPeriod returns all users' records in [from, to).
	ListByPeriod(ctx context.Context, from, to time.Time) ([]Attendance, error)

	// ListAll returns every record, newest date first.
	ListAll(ctx context.Context) ([]Attendance, error)

	ExistsForDate(ctx context.Context, userID string, date time.Time) (bool, error)
}
