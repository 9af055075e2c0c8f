package testutil

import (
	"time"

	"github.com/hupe1980/meetmesh/core"
)

// Day returns local midnight for the given date in loc.
func Day(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// Window builds a TimeWindow on the given day from startHour:startMin lasting
// the given duration.
func Window(day time.Time, hour, min int, d time.Duration) core.TimeWindow {
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
	return core.TimeWindow{Start: start, End: start.Add(d)}
}
