package models

import (
	"fmt"
	"time"
)

// TimeRange represents a wall-clock span with start and end times
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewTimeRange creates a new TimeRange with validation
func NewTimeRange(start, end time.Time) (*TimeRange, error) {
	if start.After(end) {
		return nil, fmt.Errorf("start time %v cannot be after end time %v", start, end)
	}
	return &TimeRange{Start: start, End: end}, nil
}

// ClockRange anchors a pair of clocks on the calendar day of day
func ClockRange(day time.Time, start, end Clock) (*TimeRange, error) {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return NewTimeRange(
		midnight.Add(time.Duration(start)*time.Minute),
		midnight.Add(time.Duration(end)*time.Minute),
	)
}

// Duration returns the duration of the time range
func (tr *TimeRange) Duration() time.Duration {
	return tr.End.Sub(tr.Start)
}

// Covers reports whether other lies entirely inside tr
func (tr *TimeRange) Covers(other *TimeRange) bool {
	if other == nil {
		return false
	}
	return !other.Start.Before(tr.Start) && !other.End.After(tr.End)
}

// Label renders the range for display, e.g. "8:10 am a 8:20 am"
func (tr *TimeRange) Label() string {
	return fmt.Sprintf("%s a %s", clockOf(tr.Start).Format12(), clockOf(tr.End).Format12())
}

// String returns a human-readable representation of the time range
func (tr *TimeRange) String() string {
	return fmt.Sprintf("%s - %s", tr.Start.Format(time.RFC3339), tr.End.Format(time.RFC3339))
}

func clockOf(t time.Time) Clock {
	return NewClock(t.Hour(), t.Minute())
}
