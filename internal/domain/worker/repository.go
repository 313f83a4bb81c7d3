package worker

import "context"

type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)

	// List returns all workers, newest first.
	List(ctx context.Context) ([]Worker, error)

	GetByID(ctx context.Context, id string) (Worker, error)
	GetByEmail(ctx context.Context, email string) (Worker, error)
	Update(ctx context.Context, w Worker) error
	Delete(ctx context.Context, id string) error
}
