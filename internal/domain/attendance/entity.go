package attendance

import "time"

// Attendance is one presence record. CheckInDay is the local calendar day
// of CheckIn (YYYY-MM-DD); the table enforces UNIQUE (email, check_in_day)
// so at most one record per worker per day survives concurrent marking.
type Attendance struct {
	ID         string
	Email      string
	CheckIn    time.Time
	CheckInDay string
	SiteID     *string
	CreatedAt  time.Time
}
