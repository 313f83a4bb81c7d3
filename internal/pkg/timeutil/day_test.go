package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayWindow_Boundaries(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	at := time.Date(2025, 7, 17, 14, 30, 12, 0, loc)
	start, end := DayWindow(at)

	assert.Equal(t, time.Date(2025, 7, 17, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 7, 17, 23, 59, 59, 999000000, loc), end)
}

func TestDayWindow_MidnightEdge(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 23:59:59.999 and 00:00:00.000 the next day must land in different days.
	lastTick := time.Date(2025, 7, 17, 23, 59, 59, 999000000, loc)
	firstTick := time.Date(2025, 7, 18, 0, 0, 0, 0, loc)

	s1, e1 := DayWindow(lastTick)
	s2, _ := DayWindow(firstTick)

	assert.False(t, lastTick.Before(s1) || lastTick.After(e1))
	assert.True(t, firstTick.After(e1))
	assert.Equal(t, s1.AddDate(0, 0, 1), s2)
	assert.NotEqual(t, DayKey(lastTick), DayKey(firstTick))
}

func TestDayWindowFor(t *testing.T) {
	loc := time.UTC

	start, end, err := DayWindowFor("2025-01-31", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 1, 31, 23, 59, 59, 999000000, loc), end)

	_, _, err = DayWindowFor("31-01-2025", loc)
	assert.Error(t, err)

	// Empty date falls back to today.
	start, end, err = DayWindowFor("", loc)
	require.NoError(t, err)
	now := time.Now().In(loc)
	assert.False(t, now.Before(start) || now.After(end))
}
