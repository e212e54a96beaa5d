package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// GetMyAttendances lists the authenticated user's records with derived
	// hours/salary and the monthly summary
	GetMyAttendances(ctx context.Context, query ListQuery) (ListAttendanceResponse, error)

	// GetUserAttendances lists another user's records (admin only)
	GetUserAttendances(ctx context.Context, userID string, query ListQuery) (ListAttendanceResponse, error)

	// CreateAttendance records a day entry for the authenticated user
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// UpdateAttendance corrects a record (admin only)
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
}
