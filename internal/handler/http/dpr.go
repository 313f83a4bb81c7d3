package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/dpr"
	"github.com/buildcrew/sitepulse-backend-go/internal/handler/http/response"
)

type DPRHandler interface {
	Save(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type DPRHandlerImpl struct {
	dprService dpr.DPRService
}

func NewDPRHandler(dprService dpr.DPRService) DPRHandler {
	return &DPRHandlerImpl{dprService: dprService}
}

// Save implements DPRHandler.
func (h *DPRHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req dpr.SaveDPRRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Save DPR decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.dprService.Save(r.Context(), req)
	if err != nil {
		slog.Error("Save DPR service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "DPR saved successfully", saved)
}

// List implements DPRHandler. With ?date= it filters to that date.
func (h *DPRHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	var reports []dpr.DPRResponse
	var err error
	if date != "" {
		reports, err = h.dprService.ListByDate(r.Context(), date)
	} else {
		reports, err = h.dprService.List(r.Context())
	}
	if err != nil {
		slog.Error("List DPRs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}

// Export implements DPRHandler.
func (h *DPRHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Query parameter 'date' is required", nil)
		return
	}

	result, err := h.dprService.Export(r.Context(), date)
	if err != nil {
		slog.Error("Export DPR service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	w.Header().Set("Content-Type", result.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Content)
}
