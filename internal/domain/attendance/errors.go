package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNoRecordsToExport  = errors.New("no attendance records for export")

	// ErrDuplicateDay is returned by the repository when the
	// (email, check_in_day) uniqueness constraint rejects an insert. The
	// service reports it as the "already-marked" outcome.
	ErrDuplicateDay = errors.New("attendance already marked for this day")
)
