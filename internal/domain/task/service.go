package task

import "context"

type TaskService interface {
	Assign(ctx context.Context, req AssignTaskRequest) (TaskResponse, error)
	Complete(ctx context.Context, id string) error
	List(ctx context.Context, filter TaskFilter) ([]TaskResponse, error)

	// DailyReport renders a plain text progress listing of the tasks
	// created on the given local day.
	DailyReport(ctx context.Context, date string) (string, error)
}
