package report

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
)

const dateLayout = "2006-01-02"

type ReportServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
}

func NewReportService(db *database.DB, attendanceRepo attendance.AttendanceRepository, userRepo user.UserRepository) report.ReportService {
	return &ReportServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
	}
}

// GetDailyReports implements report.ReportService.
func (s *ReportServiceImpl) GetDailyReports(ctx context.Context) (report.DailyReportsResponse, error) {
	entries, err := s.attendanceRepo.ListAll(ctx)
	if err != nil {
		return report.DailyReportsResponse{}, fmt.Errorf("list attendances: %w", err)
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return report.DailyReportsResponse{}, fmt.Errorf("list users: %w", err)
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	resp := report.DailyReportsResponse{
		Reports: make([]report.DailyReport, 0, len(entries)),
	}
	for _, e := range entries {
		if e.Report == "" {
			continue
		}
		resp.Reports = append(resp.Reports, report.DailyReport{
			ID:       e.ID,
			UserID:   e.UserID,
			UserName: names[e.UserID],
			Date:     e.Date.Format(dateLayout),
			Report:   e.Report,
		})
	}

	return resp, nil
}
