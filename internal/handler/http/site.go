package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/attendance"
	"github.com/buildcrew/sitepulse-backend-go/internal/domain/site"
	"github.com/buildcrew/sitepulse-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SiteHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Attendance(w http.ResponseWriter, r *http.Request)
}

type SiteHandlerImpl struct {
	siteService       site.SiteService
	attendanceService attendance.AttendanceService
}

func NewSiteHandler(siteService site.SiteService, attendanceService attendance.AttendanceService) SiteHandler {
	return &SiteHandlerImpl{
		siteService:       siteService,
		attendanceService: attendanceService,
	}
}

// Create implements SiteHandler.
func (h *SiteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req site.CreateSiteRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create site decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.siteService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create site service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Site created successfully", created)
}

// List implements SiteHandler.
func (h *SiteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sites, err := h.siteService.List(r.Context())
	if err != nil {
		slog.Error("List sites service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, sites)
}

// Delete implements SiteHandler.
func (h *SiteHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Site ID is required", nil)
		return
	}

	if err := h.siteService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete site service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Site deleted successfully", nil)
}

// Attendance implements SiteHandler. Lists presence records tagged with
// the site.
func (h *SiteHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Site ID is required", nil)
		return
	}

	records, err := h.attendanceService.ListBySite(r.Context(), id)
	if err != nil {
		slog.Error("Site attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
