package payroll

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/compensation"
	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/payroll"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
}

func NewPayrollService(db *database.DB, attendanceRepo attendance.AttendanceRepository, userRepo user.UserRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
	}
}

// employeeTotals derives one employee's hours and salary from their records
// through the compensation engine. Monthly-paid employees therefore earn a
// per-day fraction for each worked day, never the flat monthly rate.
func employeeTotals(u user.User, entries []attendance.Attendance) (float64, decimal.Decimal) {
	cfg := u.PayConfig()
	records := make([]compensation.Record, len(entries))
	for i, e := range entries {
		records[i] = e.CompensationRecord()
	}

	var hours float64
	for i := range records {
		hours += compensation.CalculateDailyInfo(records[i], &cfg).WorkHours
	}
	return hours, compensation.CalculateTotalSalary(records, &cfg)
}

// GetDashboard implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetDashboard(ctx context.Context) (payroll.DashboardResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return payroll.DashboardResponse{}, fmt.Errorf("list users: %w", err)
	}

	entries, err := s.attendanceRepo.ListAll(ctx)
	if err != nil {
		return payroll.DashboardResponse{}, fmt.Errorf("list attendances: %w", err)
	}

	byUser := groupByUser(entries)

	resp := payroll.DashboardResponse{
		TotalSalary:  decimal.Zero,
		EmployeeData: make([]payroll.EmployeeData, 0, len(users)),
	}
	for _, u := range users {
		if u.IsAdmin() {
			continue
		}
		hours, salary := employeeTotals(u, byUser[u.ID])
		resp.EmployeeData = append(resp.EmployeeData, payroll.EmployeeData{
			ID:          u.ID,
			Name:        u.Name,
			TotalHours:  hours,
			TotalSalary: salary,
		})
		resp.TotalHours += hours
		resp.TotalSalary = resp.TotalSalary.Add(salary)
	}
	resp.ActiveEmployees = len(resp.EmployeeData)

	return resp, nil
}

// GetPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, month string) (payroll.PayrollResponse, error) {
	monthStart, ok := validator.IsValidMonth(month)
	if !ok {
		return payroll.PayrollResponse{}, payroll.ErrInvalidMonth
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("list users: %w", err)
	}

	entries, err := s.attendanceRepo.ListByPeriod(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("list attendances: %w", err)
	}

	byUser := groupByUser(entries)

	resp := payroll.PayrollResponse{
		Month:        month,
		TotalPayroll: decimal.Zero,
		PayrollData:  make([]payroll.PayrollEmployee, 0, len(users)),
	}
	for _, u := range users {
		if u.IsAdmin() {
			continue
		}
		hours, salary := employeeTotals(u, byUser[u.ID])
		resp.PayrollData = append(resp.PayrollData, payroll.PayrollEmployee{
			ID:          u.ID,
			Name:        u.Name,
			PayType:     string(u.PayType),
			PayRate:     u.PayRate,
			TotalHours:  hours,
			TotalSalary: salary,
		})
		resp.TotalPayroll = resp.TotalPayroll.Add(salary)
	}

	return resp, nil
}

func groupByUser(entries []attendance.Attendance) map[string][]attendance.Attendance {
	byUser := make(map[string][]attendance.Attendance)
	for _, e := range entries {
		byUser[e.UserID] = append(byUser[e.UserID], e)
	}
	return byUser
}
