package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, user_id, date, start_time, end_time, break_minutes, report, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Date,
		&a.StartTime,
		&a.EndTime,
		&a.BreakMinutes,
		&a.Report,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	if err != nil {
		return attendance.Attendance{}, err
	}
	return a, nil
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, user_id, date, start_time, end_time, break_minutes, report)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + attendanceColumns

	return scanAttendance(q.QueryRow(ctx, query,
		uuid.NewString(),
		a.UserID,
		a.Date,
		a.StartTime,
		a.EndTime,
		a.BreakMinutes,
		a.Report,
	))
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`
	return scanAttendance(q.QueryRow(ctx, query, id))
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET date = $1, start_time = $2, end_time = $3, break_minutes = $4,
		    report = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + attendanceColumns

	return scanAttendance(q.QueryRow(ctx, query,
		a.Date,
		a.StartTime,
		a.EndTime,
		a.BreakMinutes,
		a.Report,
		a.ID,
	))
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if from.IsZero() && to.IsZero() {
		query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE user_id = $1 ORDER BY date DESC`
		rows, err := q.Query(ctx, query, userID)
		if err != nil {
			return nil, err
		}
		return collectAttendances(rows)
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date DESC`
	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	return collectAttendances(rows)
}

// ListByPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByPeriod(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE date >= $1 AND date < $2
		ORDER BY date DESC`
	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	return collectAttendances(rows)
}

// ListAll implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListAll(ctx context.Context) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances ORDER BY date DESC`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectAttendances(rows)
}

// ExistsForDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ExistsForDate(ctx context.Context, userID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM attendances WHERE user_id = $1 AND date = $2)`,
		userID, date,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
