package face

import "time"

// Face is one enrolled identity: a single 128-element embedding keyed by
// the worker's email. Re-enrollment replaces the descriptor in place.
type Face struct {
	ID         string
	Email      string
	Descriptor []float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
