package models

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidRange is returned when an allowed range is empty, inverted or outside the window
var ErrInvalidRange = errors.New("invalid allowed range")

// AllowedRange is a pre-approved time-of-day interval a selection may land in
type AllowedRange struct {
	StartTime string `json:"start" yaml:"start" mapstructure:"start"`
	EndTime   string `json:"end" yaml:"end" mapstructure:"end"`
}

// Bounds parses both ends of the range
func (r AllowedRange) Bounds() (Clock, Clock, error) {
	start, err := ParseClock(r.StartTime)
	if err != nil {
		return 0, 0, fmt.Errorf("range start: %w", err)
	}
	end, err := ParseClock(r.EndTime)
	if err != nil {
		return 0, 0, fmt.Errorf("range end: %w", err)
	}
	return start, end, nil
}

// Validate checks that the range parses, is non-empty and lies within [startHour, endHour]
func (r AllowedRange) Validate(startHour, endHour int) error {
	start, end, err := r.Bounds()
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("%w: %s must start before it ends", ErrInvalidRange, r)
	}
	if start < NewClock(startHour, 0) || end > NewClock(endHour, 0) {
		return fmt.Errorf("%w: %s is outside %02d:00-%02d:00", ErrInvalidRange, r, startHour, endHour)
	}
	return nil
}

// String returns "HH:MM-HH:MM"
func (r AllowedRange) String() string {
	return fmt.Sprintf("%s-%s", r.StartTime, r.EndTime)
}

// SortRanges returns a copy of ranges ordered by start time.
// Unparseable entries sort last and keep their relative order.
func SortRanges(ranges []AllowedRange) []AllowedRange {
	sorted := make([]AllowedRange, len(ranges))
	copy(sorted, ranges)

	key := func(r AllowedRange) int {
		c, err := ParseClock(r.StartTime)
		if err != nil {
			return MinutesPerDay + 1
		}
		return int(c)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) < key(sorted[j])
	})
	return sorted
}
