package attendance

import (
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/validator"
)

// Mark outcome statuses.
const (
	StatusMarked        = "marked"
	StatusAlreadyMarked = "already-marked"
)

type MarkAttendanceRequest struct {
	Email  string  `json:"email"`
	SiteID *string `json:"site_id,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MarkAttendanceResponse reports the idempotent outcome: "already-marked"
// is a defined result, not an error.
type MarkAttendanceResponse struct {
	Status  string `json:"status"`
	Email   string `json:"email"`
	CheckIn string `json:"check_in,omitempty"`
}

type AttendanceResponse struct {
	ID      string  `json:"id"`
	Email   string  `json:"email"`
	CheckIn string  `json:"check_in"`
	SiteID  *string `json:"site_id,omitempty"`
}

type SummaryEntry struct {
	Email string `json:"email"`
	Count int64  `json:"count"`
}

type DayFilter struct {
	Date   string `json:"date"` // YYYY-MM-DD, empty = today
	Unique bool   `json:"unique"`
}

func (f *DayFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != "" {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExportRequest struct {
	Date   string `json:"date"`   // optional YYYY-MM-DD; empty = everything
	Format string `json:"format"` // "xlsx" (default) or "csv"
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Format == "" {
		r.Format = "xlsx"
	}
	if !validator.IsInSlice(r.Format, []string{"xlsx", "csv"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be one of: xlsx, csv",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ExportResponse carries a generated spreadsheet.
type ExportResponse struct {
	Filename    string
	ContentType string
	Content     []byte
}
