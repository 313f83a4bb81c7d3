package site

import "time"

type Site struct {
	ID          string
	Name        string
	Location    *string
	Description *string
	CreatedAt   time.Time
}
