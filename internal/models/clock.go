package models

import (
	"errors"
	"fmt"
)

// ErrMalformedTime is returned when a time-of-day string is not a valid "HH:MM" value
var ErrMalformedTime = errors.New("malformed time of day")

// MinutesPerDay is the number of minutes between two midnights
const MinutesPerDay = 24 * 60

// Clock is a time of day expressed in minutes since midnight.
// MinutesPerDay itself is a valid Clock and represents the end-of-day boundary.
type Clock int

// NewClock builds a Clock from an hour and minute pair
func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ParseClock parses a zero-padded 24-hour "HH:MM" string
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	hour, ok := parseDigits(s[0:2])
	if !ok {
		return 0, fmt.Errorf("%w: %q has a non-numeric hour", ErrMalformedTime, s)
	}
	minute, ok := parseDigits(s[3:5])
	if !ok {
		return 0, fmt.Errorf("%w: %q has non-numeric minutes", ErrMalformedTime, s)
	}

	if minute > 59 {
		return 0, fmt.Errorf("%w: %q minutes out of range", ErrMalformedTime, s)
	}
	// 24:00 closes the day; anything past it does not exist
	if hour > 24 || (hour == 24 && minute != 0) {
		return 0, fmt.Errorf("%w: %q hour out of range", ErrMalformedTime, s)
	}

	return NewClock(hour, minute), nil
}

// MustParseClock is like ParseClock but panics on malformed input.
// Intended for literals in tests and defaults.
func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

// Hour returns the hour component
func (c Clock) Hour() int {
	return int(c) / 60
}

// Minute returns the minute component
func (c Clock) Minute() int {
	return int(c) % 60
}

// String returns the zero-padded "HH:MM" form
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Format12 renders the clock as "h:mm am" / "h:mm pm".
// Midnight and noon both render with hour 12.
func (c Clock) Format12() string {
	hour := c.Hour() % 24
	suffix := "am"
	if hour >= 12 {
		suffix = "pm"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minute(), suffix)
}

// FormatTime12 converts a 24-hour "HH:MM" string to its 12-hour display form
func FormatTime12(s string) (string, error) {
	c, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	return c.Format12(), nil
}
