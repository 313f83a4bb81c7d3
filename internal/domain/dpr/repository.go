package dpr

import "context"

type DPRRepository interface {
	Create(ctx context.Context, report DPR) (DPR, error)

	// List returns all reports, newest first.
	List(ctx context.Context) ([]DPR, error)

	// ListByDate returns reports for the given date string (as entered).
	ListByDate(ctx context.Context, date string) ([]DPR, error)
}
