package worker

import "time"

type Worker struct {
	ID        string
	Name      string
	Email     string
	PhotoURL  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
