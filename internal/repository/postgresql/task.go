package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/task"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

// Create implements task.TaskRepository.
func (r *taskRepository) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (email, task, assigned_by, status)
		VALUES (LOWER($1), $2, $3, $4)
		RETURNING id, email, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, t.Email, t.Task, t.AssignedBy, t.Status).
		Scan(&t.ID, &t.Email, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

// SetStatus implements task.TaskRepository.
func (r *taskRepository) SetStatus(ctx context.Context, id string, status string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

// List implements task.TaskRepository.
func (r *taskRepository) List(ctx context.Context, email string, start, end *time.Time) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, task, assigned_by, status, created_at, updated_at
		FROM tasks
	`

	var conditions []string
	var args []interface{}

	if email != "" {
		args = append(args, email)
		conditions = append(conditions, fmt.Sprintf("email = LOWER($%d)", len(args)))
	}
	if start != nil && end != nil {
		args = append(args, *start)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
		args = append(args, *end)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func scanTasks(rows pgx.Rows) ([]task.Task, error) {
	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(&t.ID, &t.Email, &t.Task, &t.AssignedBy, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
