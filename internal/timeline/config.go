package timeline

import (
	"errors"
	"fmt"

	"github.com/cheerioskun/slotpick/internal/models"
)

var (
	// ErrInvalidLayout is returned for a non-positive timeline width or inverted hour bounds
	ErrInvalidLayout = errors.New("invalid timeline layout")
	// ErrInvalidInterval is returned when the tick interval is not positive
	ErrInvalidInterval = errors.New("tick interval must be positive")
	// ErrInvalidDuration is returned for resize limits that are not positive, inverted,
	// or longer than the timeline
	ErrInvalidDuration = errors.New("invalid duration limits")
)

// Config describes one timeline instance. It is never mutated after construction.
type Config struct {
	StartHour       int                   `json:"start_hour" yaml:"start_hour" mapstructure:"start_hour"`
	EndHour         int                   `json:"end_hour" yaml:"end_hour" mapstructure:"end_hour"`
	IntervalMinutes int                   `json:"interval_minutes" yaml:"interval_minutes" mapstructure:"interval_minutes"`
	AllowedRanges   []models.AllowedRange `json:"allowed_ranges" yaml:"allowed_ranges" mapstructure:"allowed_ranges"`
}

// DefaultConfig returns an 08:00-09:00 window with 5 minute ticks and no allowed ranges
func DefaultConfig() Config {
	return Config{
		StartHour:       8,
		EndHour:         9,
		IntervalMinutes: 5,
	}
}

// Validate checks the hour window, the tick interval and every allowed range
func (c Config) Validate() error {
	if err := validateHours(c.StartHour, c.EndHour); err != nil {
		return err
	}
	if c.IntervalMinutes <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidInterval, c.IntervalMinutes)
	}
	for i, r := range c.AllowedRanges {
		if err := r.Validate(c.StartHour, c.EndHour); err != nil {
			return fmt.Errorf("allowed range #%d: %w", i, err)
		}
	}
	return nil
}

func validateHours(startHour, endHour int) error {
	if startHour < 0 || endHour > 24 {
		return fmt.Errorf("%w: hours %d-%d must lie within 0-24", ErrInvalidLayout, startHour, endHour)
	}
	if startHour >= endHour {
		return fmt.Errorf("%w: start hour %d must be before end hour %d", ErrInvalidLayout, startHour, endHour)
	}
	return nil
}

// TotalMinutes returns the length of the window in minutes
func (c Config) TotalMinutes() int {
	return (c.EndHour - c.StartHour) * 60
}

// TickLabels returns "HH:MM" axis labels every IntervalMinutes from StartHour,
// including EndHour:00 when the step lands on it exactly
func (c Config) TickLabels() []string {
	if c.IntervalMinutes <= 0 || c.StartHour >= c.EndHour {
		return nil
	}

	start := models.NewClock(c.StartHour, 0)
	end := models.NewClock(c.EndHour, 0)

	labels := make([]string, 0, c.TotalMinutes()/c.IntervalMinutes+1)
	for t := start; t <= end; t += models.Clock(c.IntervalMinutes) {
		labels = append(labels, t.String())
	}
	return labels
}
