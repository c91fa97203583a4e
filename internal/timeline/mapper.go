package timeline

import (
	"fmt"
	"math"

	"github.com/cheerioskun/slotpick/internal/models"
)

// Mapper converts between time of day and a horizontal offset on a timeline
// of known width covering [startHour, endHour)
type Mapper struct {
	startMinutes float64
	totalMinutes float64
	width        float64
}

// NewMapper creates a mapper, failing with ErrInvalidLayout instead of producing NaN later
func NewMapper(startHour, endHour int, width float64) (*Mapper, error) {
	if err := validateHours(startHour, endHour); err != nil {
		return nil, err
	}
	if !(width > 0) || math.IsInf(width, 0) {
		return nil, fmt.Errorf("%w: timeline width %v must be positive", ErrInvalidLayout, width)
	}

	return &Mapper{
		startMinutes: float64(startHour * 60),
		totalMinutes: float64((endHour - startHour) * 60),
		width:        width,
	}, nil
}

// Width returns the timeline width in pixels
func (m *Mapper) Width() float64 {
	return m.width
}

// TimeToPixels parses an "HH:MM" value and maps it onto the timeline.
// The result is not clamped to [0, Width].
func (m *Mapper) TimeToPixels(s string) (float64, error) {
	c, err := models.ParseClock(s)
	if err != nil {
		return 0, err
	}
	return m.ClockToPixels(c), nil
}

// ClockToPixels maps a clock onto the timeline without clamping
func (m *Mapper) ClockToPixels(c models.Clock) float64 {
	return (float64(c) - m.startMinutes) * m.width / m.totalMinutes
}

// PixelsToClock maps an offset back to the nearest whole minute
func (m *Mapper) PixelsToClock(px float64) models.Clock {
	minutes := math.Round(m.startMinutes + m.PixelsToMinutes(px))
	switch {
	case math.IsNaN(minutes) || minutes < 0:
		minutes = 0
	case minutes > models.MinutesPerDay:
		minutes = models.MinutesPerDay
	}
	return models.Clock(minutes)
}

// PixelsToTime is PixelsToClock formatted as "HH:MM"
func (m *Mapper) PixelsToTime(px float64) string {
	return m.PixelsToClock(px).String()
}

// MinutesToPixels converts a duration in minutes to a width on the timeline
func (m *Mapper) MinutesToPixels(minutes float64) float64 {
	return minutes * m.width / m.totalMinutes
}

// PixelsToMinutes converts a width on the timeline to a duration in minutes
func (m *Mapper) PixelsToMinutes(px float64) float64 {
	return px * m.totalMinutes / m.width
}
