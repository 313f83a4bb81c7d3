package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/attendance"
	"github.com/buildcrew/sitepulse-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	ListForDay(w http.ResponseWriter, r *http.Request)
	ListToday(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler. "already-marked" is a success
// payload, not an error.
func (a *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Mark attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.attendanceService.Mark(r.Context(), req)
	if err != nil {
		slog.Error("Mark attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListForDay implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListForDay(w http.ResponseWriter, r *http.Request) {
	filter := attendance.DayFilter{
		Date:   r.URL.Query().Get("date"),
		Unique: r.URL.Query().Get("unique") == "true",
	}

	records, err := a.attendanceService.ListForDay(r.Context(), filter)
	if err != nil {
		slog.Error("ListForDay service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListToday implements AttendanceHandler. Today's records, first record
// per worker when ?unique=true.
func (a *AttendanceHandlerImpl) ListToday(w http.ResponseWriter, r *http.Request) {
	filter := attendance.DayFilter{
		Unique: r.URL.Query().Get("unique") == "true",
	}

	records, err := a.attendanceService.ListForDay(r.Context(), filter)
	if err != nil {
		slog.Error("ListToday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// History implements AttendanceHandler.
func (a *AttendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	records, err := a.attendanceService.History(r.Context())
	if err != nil {
		slog.Error("History service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Summary implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.attendanceService.Summary(r.Context())
	if err != nil {
		slog.Error("Summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Export implements AttendanceHandler. Streams the spreadsheet as a
// download instead of the JSON envelope.
func (a *AttendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := attendance.ExportRequest{
		Date:   r.URL.Query().Get("date"),
		Format: r.URL.Query().Get("format"),
	}

	result, err := a.attendanceService.Export(r.Context(), req)
	if err != nil {
		slog.Error("Export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	w.Header().Set("Content-Type", result.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Content)
}
