package attendance

import "context"

// AttendanceService defines business logic for the attendance ledger.
type AttendanceService interface {
	// Mark records presence for today, at most once per local calendar
	// day. Marking twice in the same day returns StatusAlreadyMarked.
	Mark(ctx context.Context, req MarkAttendanceRequest) (MarkAttendanceResponse, error)

	// ListForDay returns records inside the local day named by the filter.
	ListForDay(ctx context.Context, filter DayFilter) ([]AttendanceResponse, error)

	// History returns every record, newest first.
	History(ctx context.Context) ([]AttendanceResponse, error)

	// ListBySite returns records tagged with a site.
	ListBySite(ctx context.Context, siteID string) ([]AttendanceResponse, error)

	// Summary returns the per-email total record counts.
	Summary(ctx context.Context) ([]SummaryEntry, error)

	// Export builds an XLSX or CSV of the records, check-in descending.
	Export(ctx context.Context, req ExportRequest) (ExportResponse, error)
}
