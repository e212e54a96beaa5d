package attendance

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/compensation"
)

// Attendance is one day's entry: a calendar date, time-of-day bounds in
// "HH:MM", unpaid break minutes, and the free-text daily report. Times carry
// no zone; a shift whose end precedes its start crosses midnight.
type Attendance struct {
	ID           string
	UserID       string
	Date         time.Time
	StartTime    string
	EndTime      string
	BreakMinutes int
	Report       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const dateLayout = "2006-01-02"

// CompensationRecord converts the entity into the engine's snapshot form.
func (a Attendance) CompensationRecord() compensation.Record {
	return compensation.Record{
		UserID:       a.UserID,
		Date:         a.Date.Format(dateLayout),
		StartTime:    a.StartTime,
		EndTime:      a.EndTime,
		BreakMinutes: a.BreakMinutes,
	}
}
