package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDuplicateEntry     = errors.New("an entry for this date already exists")
	ErrInvalidMonth       = errors.New("month must be in YYYY-MM format")
)
