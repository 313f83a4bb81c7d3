package task

import "time"

// Task statuses.
const (
	StatusPending = "pending"
	StatusDone    = "done"
)

type Task struct {
	ID         string
	Email      string
	Task       string
	AssignedBy string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
