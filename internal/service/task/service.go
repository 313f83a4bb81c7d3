package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/task"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/timeutil"
)

type TaskServiceImpl struct {
	task.TaskRepository
}

func NewTaskService(taskRepo task.TaskRepository) task.TaskService {
	return &TaskServiceImpl{TaskRepository: taskRepo}
}

// Assign implements task.TaskService.
func (t *TaskServiceImpl) Assign(ctx context.Context, req task.AssignTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	created, err := t.TaskRepository.Create(ctx, task.Task{
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Task:       strings.TrimSpace(req.Task),
		AssignedBy: strings.TrimSpace(req.AssignedBy),
		Status:     task.StatusPending,
	})
	if err != nil {
		return task.TaskResponse{}, err
	}

	return toResponse(created), nil
}

// Complete implements task.TaskService.
func (t *TaskServiceImpl) Complete(ctx context.Context, id string) error {
	return t.TaskRepository.SetStatus(ctx, id, task.StatusDone)
}

// List implements task.TaskService.
func (t *TaskServiceImpl) List(ctx context.Context, filter task.TaskFilter) ([]task.TaskResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var start, end *time.Time
	if filter.Date != "" {
		s, e, err := timeutil.DayWindowFor(filter.Date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve day window: %w", err)
		}
		start, end = &s, &e
	}

	tasks, err := t.TaskRepository.List(ctx, strings.ToLower(strings.TrimSpace(filter.Email)), start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, item := range tasks {
		responses = append(responses, toResponse(item))
	}
	return responses, nil
}

// DailyReport implements task.TaskService. The output is a plain text
// block per task, ready to be served as a downloadable file.
func (t *TaskServiceImpl) DailyReport(ctx context.Context, date string) (string, error) {
	if date == "" {
		date = timeutil.DayKey(time.Now())
	}

	start, end, err := timeutil.DayWindowFor(date, time.Local)
	if err != nil {
		return "", fmt.Errorf("failed to resolve day window: %w", err)
	}

	tasks, err := t.TaskRepository.List(ctx, "", &start, &end)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, item := range tasks {
		fmt.Fprintf(&b, "Worker: %s\nTask: %s\nStatus: %s\nAssigned By: %s\n\n",
			item.Email, item.Task, item.Status, item.AssignedBy)
	}
	return b.String(), nil
}

func toResponse(item task.Task) task.TaskResponse {
	return task.TaskResponse{
		ID:         item.ID,
		Email:      item.Email,
		Task:       item.Task,
		AssignedBy: item.AssignedBy,
		Status:     item.Status,
		CreatedAt:  item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  item.UpdatedAt.Format(time.RFC3339),
	}
}
