package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/attendance"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/export"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/sse"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/timeutil"
)

const checkInFormat = "2006-01-02 15:04:05"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	hub *sse.Hub

	// now is the clock for day-boundary decisions.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	hub *sse.Hub,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		hub:                  hub,
		now:                  time.Now,
	}
}

// Mark implements attendance.AttendanceService. Marking is idempotent per
// local calendar day: the second and later calls for the same worker and
// day return StatusAlreadyMarked with a 200, never an error.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	now := a.now()
	dayKey := timeutil.DayKey(now)

	marked, err := a.AttendanceRepository.HasMarked(ctx, email, dayKey)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if marked {
		return attendance.MarkAttendanceResponse{
			Status: attendance.StatusAlreadyMarked,
			Email:  email,
		}, nil
	}

	created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		Email:      email,
		CheckIn:    now,
		CheckInDay: dayKey,
		SiteID:     req.SiteID,
	})
	if err != nil {
		// The pre-check raced a concurrent mark; the day is taken.
		if errors.Is(err, attendance.ErrDuplicateDay) {
			return attendance.MarkAttendanceResponse{
				Status: attendance.StatusAlreadyMarked,
				Email:  email,
			}, nil
		}
		return attendance.MarkAttendanceResponse{}, err
	}

	if a.hub != nil {
		a.hub.Publish(sse.Event{
			Topic: "attendance.marked",
			Data: map[string]string{
				"email":    created.Email,
				"check_in": created.CheckIn.Format(checkInFormat),
			},
		})
	}

	return attendance.MarkAttendanceResponse{
		Status:  attendance.StatusMarked,
		Email:   created.Email,
		CheckIn: created.CheckIn.Format(checkInFormat),
	}, nil
}

// ListForDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListForDay(ctx context.Context, filter attendance.DayFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, end, err := timeutil.DayWindowFor(filter.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve day window: %w", err)
	}

	records, err := a.AttendanceRepository.ListBetween(ctx, start, end, filter.Unique)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// ListBySite implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListBySite(ctx context.Context, siteID string) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.ListBySite(ctx, siteID)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// Summary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Summary(ctx context.Context) ([]attendance.SummaryEntry, error) {
	return a.AttendanceRepository.SummaryByEmail(ctx)
}

// Export implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Export(ctx context.Context, req attendance.ExportRequest) (attendance.ExportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ExportResponse{}, err
	}

	var records []attendance.Attendance
	var err error
	filename := "Attendance"

	if req.Date != "" {
		start, end, werr := timeutil.DayWindowFor(req.Date, time.Local)
		if werr != nil {
			return attendance.ExportResponse{}, fmt.Errorf("failed to resolve day window: %w", werr)
		}
		records, err = a.AttendanceRepository.ListBetween(ctx, start, end, false)
		filename = "Attendance_" + req.Date
	} else {
		records, err = a.AttendanceRepository.ListAll(ctx)
	}
	if err != nil {
		return attendance.ExportResponse{}, err
	}

	if len(records) == 0 {
		return attendance.ExportResponse{}, attendance.ErrNoRecordsToExport
	}

	sheet := export.Sheet{
		Name:   "Attendance",
		Header: []string{"Email", "TimeStamp"},
	}
	for _, r := range records {
		sheet.Rows = append(sheet.Rows, []string{r.Email, r.CheckIn.Format(checkInFormat)})
	}

	if req.Format == "csv" {
		content, err := sheet.CSV()
		if err != nil {
			return attendance.ExportResponse{}, err
		}
		return attendance.ExportResponse{
			Filename:    filename + ".csv",
			ContentType: export.ContentTypeCSV,
			Content:     content,
		}, nil
	}

	content, err := sheet.XLSX()
	if err != nil {
		return attendance.ExportResponse{}, err
	}
	return attendance.ExportResponse{
		Filename:    filename + ".xlsx",
		ContentType: export.ContentTypeXLSX,
		Content:     content,
	}, nil
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.AttendanceResponse{
			ID:      r.ID,
			Email:   r.Email,
			CheckIn: r.CheckIn.Format(checkInFormat),
			SiteID:  r.SiteID,
		})
	}
	return responses
}
