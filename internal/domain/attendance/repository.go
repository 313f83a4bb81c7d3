package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for presence records.
type AttendanceRepository interface {
	// Create inserts a new record. A unique violation on
	// (email, check_in_day) surfaces as ErrDuplicateDay from the
	// implementation so the service can report "already-marked".
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// HasMarked reports whether email already has a record for the given
	// local day key (YYYY-MM-DD). Best-effort pre-check; the uniqueness
	// constraint is the real guarantee.
	HasMarked(ctx context.Context, email string, dayKey string) (bool, error)

	// ListBetween returns records with check-in inside [start, end]. When
	// unique is set, only the first record per email is returned.
	ListBetween(ctx context.Context, start, end time.Time, unique bool) ([]Attendance, error)

	// ListAll returns the full history, check-in descending.
	ListAll(ctx context.Context) ([]Attendance, error)

	// ListBySite returns records tagged with a site.
	ListBySite(ctx context.Context, siteID string) ([]Attendance, error)

	// SummaryByEmail returns the total record count per email, every day
	// counted (reporting is not de-duplicated by day).
	SummaryByEmail(ctx context.Context) ([]SummaryEntry, error)
}
