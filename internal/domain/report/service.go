package report

import "context"

// ReportService exposes the daily-report feed
type ReportService interface {
	// GetDailyReports returns all users' reports, newest date first.
	// Entries with empty report text are skipped.
	GetDailyReports(ctx context.Context) (DailyReportsResponse, error)
}
