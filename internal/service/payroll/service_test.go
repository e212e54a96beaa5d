package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/payroll"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) { return f.users, nil }

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) (user.User, error) { return u, nil }

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

type fakeAttendanceRepo struct {
	entries []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}

func (f *fakeAttendanceRepo) ListByUser(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByPeriod(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, e := range f.entries {
		if e.Date.Before(from) || !e.Date.Before(to) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListAll(ctx context.Context) ([]attendance.Attendance, error) {
	return f.entries, nil
}

func (f *fakeAttendanceRepo) ExistsForDate(ctx context.Context, userID string, date time.Time) (bool, error) {
	return false, nil
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func testFixtures(t *testing.T) (payroll.PayrollService, *fakeUserRepo, *fakeAttendanceRepo) {
	t.Helper()
	users := &fakeUserRepo{users: []user.User{
		{ID: "admin", Name: "Admin", Role: user.RoleAdmin, PayType: "MONTHLY", PayRate: decimal.NewFromInt(500000)},
		{ID: "hourly", Name: "Hana", Role: user.RoleUser, PayType: "HOURLY", PayRate: decimal.NewFromInt(1500)},
		{ID: "monthly", Name: "Kenta", Role: user.RoleUser, PayType: "MONTHLY", PayRate: decimal.NewFromInt(330000)},
	}}
	attendances := &fakeAttendanceRepo{entries: []attendance.Attendance{
		{ID: "a1", UserID: "hourly", Date: mustDate(t, "2025-06-02"), StartTime: "09:00", EndTime: "18:00", BreakMinutes: 60},
		{ID: "a2", UserID: "hourly", Date: mustDate(t, "2025-06-03"), StartTime: "09:00", EndTime: "13:00"},
		{ID: "a3", UserID: "monthly", Date: mustDate(t, "2025-06-02"), StartTime: "09:00", EndTime: "18:00", BreakMinutes: 60},
		{ID: "a4", UserID: "monthly", Date: mustDate(t, "2025-07-01"), StartTime: "09:00", EndTime: "18:00", BreakMinutes: 60},
		{ID: "a5", UserID: "admin", Date: mustDate(t, "2025-06-02"), StartTime: "09:00", EndTime: "18:00"},
	}}
	return NewPayrollService(nil, attendances, users), users, attendances
}

func TestGetDashboard(t *testing.T) {
	svc, _, _ := testFixtures(t)

	resp, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	// Admin accounts never appear in payroll views.
	require.Len(t, resp.EmployeeData, 2)
	assert.Equal(t, 2, resp.ActiveEmployees)

	byID := map[string]payroll.EmployeeData{}
	for _, e := range resp.EmployeeData {
		byID[e.ID] = e
	}

	// 8h + 4h at 1500/h.
	assert.InDelta(t, 12.0, byID["hourly"].TotalHours, 1e-9)
	assert.True(t, byID["hourly"].TotalSalary.Equal(decimal.NewFromInt(18000)))

	// Two worked days, each 330000/22.
	assert.InDelta(t, 16.0, byID["monthly"].TotalHours, 1e-9)
	assert.True(t, byID["monthly"].TotalSalary.Equal(decimal.NewFromInt(30000)))

	assert.InDelta(t, 28.0, resp.TotalHours, 1e-9)
	assert.True(t, resp.TotalSalary.Equal(decimal.NewFromInt(48000)))
}

func TestGetPayrollScopedToMonth(t *testing.T) {
	svc, _, _ := testFixtures(t)

	resp, err := svc.GetPayroll(context.Background(), "2025-06")
	require.NoError(t, err)

	assert.Equal(t, "2025-06", resp.Month)
	require.Len(t, resp.PayrollData, 2)

	byID := map[string]payroll.PayrollEmployee{}
	for _, e := range resp.PayrollData {
		byID[e.ID] = e
	}

	// The July entry is outside the requested month.
	assert.True(t, byID["monthly"].TotalSalary.Equal(decimal.NewFromInt(15000)))
	assert.InDelta(t, 8.0, byID["monthly"].TotalHours, 1e-9)
	assert.Equal(t, "MONTHLY", byID["monthly"].PayType)

	assert.True(t, resp.TotalPayroll.Equal(decimal.NewFromInt(33000)))
}

func TestGetPayrollInvalidMonth(t *testing.T) {
	svc, _, _ := testFixtures(t)

	_, err := svc.GetPayroll(context.Background(), "June 2025")
	assert.ErrorIs(t, err, payroll.ErrInvalidMonth)
}

func TestGetDashboardEmployeeWithoutRecords(t *testing.T) {
	svc, users, attendances := testFixtures(t)
	users.users = append(users.users, user.User{
		ID: "new", Name: "Mio", Role: user.RoleUser, PayType: "HOURLY", PayRate: decimal.NewFromInt(1200),
	})
	attendances.entries = nil

	resp, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.EmployeeData, 3)
	for _, e := range resp.EmployeeData {
		assert.Zero(t, e.TotalHours)
		assert.True(t, e.TotalSalary.IsZero())
	}
	assert.True(t, resp.TotalSalary.IsZero())
}
