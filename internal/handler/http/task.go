package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/task"
	"github.com/buildcrew/sitepulse-backend-go/internal/handler/http/response"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/timeutil"
	"github.com/go-chi/chi/v5"
)

type TaskHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	DailyReport(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &TaskHandlerImpl{taskService: taskService}
}

// Assign implements TaskHandler.
func (h *TaskHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req task.AssignTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Assign task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	assigned, err := h.taskService.Assign(r.Context(), req)
	if err != nil {
		slog.Error("Assign task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task assigned successfully", assigned)
}

// Complete implements TaskHandler.
func (h *TaskHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Task ID is required", nil)
		return
	}

	if err := h.taskService.Complete(r.Context(), id); err != nil {
		slog.Error("Complete task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task marked as completed", nil)
}

// List implements TaskHandler.
func (h *TaskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := task.TaskFilter{
		Email: r.URL.Query().Get("email"),
		Date:  r.URL.Query().Get("date"),
	}

	tasks, err := h.taskService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List tasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// DailyReport implements TaskHandler. Serves the plain text task listing
// as a downloadable file.
func (h *TaskHandlerImpl) DailyReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = timeutil.DayKey(time.Now())
	}

	report, err := h.taskService.DailyReport(r.Context(), date)
	if err != nil {
		slog.Error("DailyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=DPR-%s.txt", date))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report))
}
