package timeutil

import "time"

// DayWindow returns the local calendar-day boundaries containing t:
// [00:00:00.000, 23:59:59.999] in t's location. Attendance dedup and all
// by-date queries use these boundaries; UTC midnight is observably wrong
// near local midnight.
func DayWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end = start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// DayWindowFor parses a YYYY-MM-DD string and returns that day's boundaries
// in loc. An empty date means today.
func DayWindowFor(dateStr string, loc *time.Location) (start, end time.Time, err error) {
	if loc == nil {
		loc = time.Local
	}
	if dateStr == "" {
		s, e := DayWindow(time.Now().In(loc))
		return s, e, nil
	}
	d, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	s, e := DayWindow(d)
	return s, e, nil
}

// DayKey formats t's local calendar day as YYYY-MM-DD. The attendances
// table keeps this as a separate column with a uniqueness constraint per
// email, which is what actually guarantees once-per-day.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
