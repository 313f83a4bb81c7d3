package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceService struct {
	markResponse attendance.MarkAttendanceResponse
	markErr      error
	records      []attendance.AttendanceResponse
	export       attendance.ExportResponse
	exportErr    error
}

func (s *stubAttendanceService) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
	if s.markErr != nil {
		return attendance.MarkAttendanceResponse{}, s.markErr
	}
	return s.markResponse, nil
}

func (s *stubAttendanceService) ListForDay(ctx context.Context, filter attendance.DayFilter) ([]attendance.AttendanceResponse, error) {
	return s.records, nil
}

func (s *stubAttendanceService) History(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	return s.records, nil
}

func (s *stubAttendanceService) ListBySite(ctx context.Context, siteID string) ([]attendance.AttendanceResponse, error) {
	return s.records, nil
}

func (s *stubAttendanceService) Summary(ctx context.Context) ([]attendance.SummaryEntry, error) {
	return nil, nil
}

func (s *stubAttendanceService) Export(ctx context.Context, req attendance.ExportRequest) (attendance.ExportResponse, error) {
	if s.exportErr != nil {
		return attendance.ExportResponse{}, s.exportErr
	}
	return s.export, nil
}

func TestMarkHandler_AlreadyMarkedIsHTTP200(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{
		markResponse: attendance.MarkAttendanceResponse{
			Status: attendance.StatusAlreadyMarked,
			Email:  "mason@example.com",
		},
	})

	body, _ := json.Marshal(attendance.MarkAttendanceRequest{Email: "mason@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Mark(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "already-marked", resp.Data.Status)
}

func TestMarkHandler_BadJSON(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()

	handler.Mark(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportHandler_SetsDownloadHeaders(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{
		export: attendance.ExportResponse{
			Filename:    "Attendance_2026-03-02.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     []byte("workbook-bytes"),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/export?date=2026-03-02", nil)
	rec := httptest.NewRecorder()

	handler.Export(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=Attendance_2026-03-02.xlsx", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "workbook-bytes", rec.Body.String())
}

func TestExportHandler_NoRecordsIs404(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{
		exportErr: attendance.ErrNoRecordsToExport,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/export", nil)
	rec := httptest.NewRecorder()

	handler.Export(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
