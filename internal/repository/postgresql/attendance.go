package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/attendance"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (email, check_in, check_in_day, site_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, att.Email, att.CheckIn, att.CheckInDay, att.SiteID).
		Scan(&att.ID, &att.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// UNIQUE (email, check_in_day) fired; a concurrent mark won.
			return attendance.Attendance{}, attendance.ErrDuplicateDay
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// HasMarked implements attendance.AttendanceRepository.
func (a *attendanceRepository) HasMarked(ctx context.Context, email string, dayKey string) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM attendances
			WHERE email = $1
			  AND check_in_day = $2
		)
	`

	var marked bool
	if err := q.QueryRow(ctx, query, email, dayKey).Scan(&marked); err != nil {
		return false, fmt.Errorf("failed to check attendance for day: %w", err)
	}

	return marked, nil
}

// ListBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListBetween(ctx context.Context, start, end time.Time, unique bool) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, email, check_in, check_in_day, site_id, created_at
		FROM attendances
		WHERE check_in >= $1 AND check_in <= $2
		ORDER BY check_in DESC
	`
	if unique {
		// First record per email inside the window.
		query = `
			SELECT DISTINCT ON (email) id, email, check_in, check_in_day, site_id, created_at
			FROM attendances
			WHERE check_in >= $1 AND check_in <= $2
			ORDER BY email, check_in ASC
		`
	}

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows)
}

// ListAll implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListAll(ctx context.Context) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, email, check_in, check_in_day, site_id, created_at
		FROM attendances
		ORDER BY check_in DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance history: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows)
}

// ListBySite implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListBySite(ctx context.Context, siteID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, email, check_in, check_in_day, site_id, created_at
		FROM attendances
		WHERE site_id = $1
		ORDER BY check_in DESC
	`

	rows, err := q.Query(ctx, query, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances by site: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows)
}

// SummaryByEmail implements attendance.AttendanceRepository.
func (a *attendanceRepository) SummaryByEmail(ctx context.Context) ([]attendance.SummaryEntry, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT email, COUNT(*) AS count
		FROM attendances
		GROUP BY email
		ORDER BY count DESC, email
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance summary: %w", err)
	}
	defer rows.Close()

	var summary []attendance.SummaryEntry
	for rows.Next() {
		var entry attendance.SummaryEntry
		if err := rows.Scan(&entry.Email, &entry.Count); err != nil {
			return nil, fmt.Errorf("failed to scan summary entry: %w", err)
		}
		summary = append(summary, entry)
	}

	return summary, rows.Err()
}

func scanAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(&att.ID, &att.Email, &att.CheckIn, &att.CheckInDay, &att.SiteID, &att.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}
