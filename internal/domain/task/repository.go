package task

import (
	"context"
	"time"
)

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)

	// SetStatus updates a task's status.
	SetStatus(ctx context.Context, id string, status string) error

	// List returns tasks newest first, optionally filtered by email and a
	// created-at window.
	List(ctx context.Context, email string, start, end *time.Time) ([]Task, error)
}
