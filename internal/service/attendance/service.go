package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendly/attendance-backend-go/internal/compensation"
	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/slack"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

const dateLayout = "2006-01-02"

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	userRepo user.UserRepository
	notifier slack.Notifier
	logger   *slog.Logger
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	notifier slack.Notifier,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		userRepo:             userRepo,
		notifier:             notifier,
		logger:               logger,
	}
}

func getClaimsFromContext(ctx context.Context) (userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return "", fmt.Errorf("user_id not found in claims")
	}

	return userID, nil
}

// GetMyAttendances implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendances(ctx context.Context, query attendance.ListQuery) (attendance.ListAttendanceResponse, error) {
	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	return s.listForUser(ctx, userID, query)
}

// GetUserAttendances implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetUserAttendances(ctx context.Context, userID string, query attendance.ListQuery) (attendance.ListAttendanceResponse, error) {
	return s.listForUser(ctx, userID, query)
}

func (s *AttendanceServiceImpl) listForUser(ctx context.Context, userID string, query attendance.ListQuery) (attendance.ListAttendanceResponse, error) {
	if err := query.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	account, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	var from, to time.Time
	if query.Month != nil && *query.Month != "" {
		monthStart, ok := validator.IsValidMonth(*query.Month)
		if !ok {
			return attendance.ListAttendanceResponse{}, attendance.ErrInvalidMonth
		}
		from = monthStart
		to = monthStart.AddDate(0, 1, 0)
	}

	entries, err := s.AttendanceRepository.ListByUser(ctx, userID, from, to)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("list attendances: %w", err)
	}

	cfg := account.PayConfig()

	records := make([]compensation.Record, len(entries))
	for i, e := range entries {
		records[i] = e.CompensationRecord()
	}

	order := compensation.SortIndices(
		records, &cfg,
		compensation.SortField(query.SortBy),
		compensation.SortOrder(query.SortOrder),
	)

	resp := attendance.ListAttendanceResponse{
		Attendances: make([]attendance.AttendanceResponse, 0, len(entries)),
	}

	var totalHours float64
	for _, j := range order {
		info := compensation.CalculateDailyInfo(records[j], &cfg)
		resp.Attendances = append(resp.Attendances, toAttendanceResponse(entries[j], info))
	}
	for i := range records {
		totalHours += compensation.CalculateDailyInfo(records[i], &cfg).WorkHours
	}

	totalSalary := compensation.CalculateTotalSalary(records, &cfg)
	goal := compensation.EffectiveGoal(cfg)
	achievement := compensation.CalculateAchievement(totalSalary, goal)

	resp.Summary = attendance.MonthlySummary{
		TotalHours:  totalHours,
		TotalSalary: totalSalary,
		MonthlyGoal: goal,
		GoalSet:     achievement.GoalSet,
		Achievement: achievement.Percentage,
		Remaining:   achievement.Remaining,
		Chart:       compensation.ChartSegments(totalSalary, goal),
	}

	return resp, nil
}

// CreateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	account, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("parse date: %w", err)
	}

	exists, err := s.AttendanceRepository.ExistsForDate(ctx, userID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("check existing entry: %w", err)
	}
	if exists {
		return attendance.AttendanceResponse{}, attendance.ErrDuplicateEntry
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID:       userID,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BreakMinutes: req.BreakMinutes,
		Report:       req.Report,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("create attendance: %w", err)
	}

	// Notification failures must not fail the request.
	go func() {
		err := s.notifier.SendAttendanceNotification(
			account.Name, req.Date, req.StartTime, req.EndTime, req.BreakMinutes, req.Report,
		)
		if err != nil {
			s.logger.Error("slack notification failed", slog.String("user_id", userID), slog.Any("error", err))
		}
	}()

	cfg := account.PayConfig()
	info := compensation.CalculateDailyInfo(created.CompensationRecord(), &cfg)
	return toAttendanceResponse(created, info), nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("parse date: %w", err)
		}
		if !date.Equal(existing.Date) {
			exists, err := s.AttendanceRepository.ExistsForDate(ctx, existing.UserID, date)
			if err != nil {
				return attendance.AttendanceResponse{}, fmt.Errorf("check existing entry: %w", err)
			}
			if exists {
				return attendance.AttendanceResponse{}, attendance.ErrDuplicateEntry
			}
			existing.Date = date
		}
	}
	if req.StartTime != nil {
		existing.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		existing.EndTime = *req.EndTime
	}
	if req.BreakMinutes != nil {
		existing.BreakMinutes = *req.BreakMinutes
	}
	if req.Report != nil {
		existing.Report = *req.Report
	}

	updated, err := s.AttendanceRepository.Update(ctx, existing)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("update attendance: %w", err)
	}

	account, err := s.userRepo.GetByID(ctx, updated.UserID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	cfg := account.PayConfig()
	info := compensation.CalculateDailyInfo(updated.CompensationRecord(), &cfg)
	return toAttendanceResponse(updated, info), nil
}

func toAttendanceResponse(a attendance.Attendance, info compensation.DailyInfo) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		Date:         a.Date.Format(dateLayout),
		StartTime:    a.StartTime,
		EndTime:      a.EndTime,
		BreakMinutes: a.BreakMinutes,
		Report:       a.Report,
		WorkHours:    info.WorkHours,
		DailySalary:  info.DailySalary,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
}
