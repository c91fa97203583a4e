package timeline

import (
	"testing"

	"github.com/cheerioskun/slotpick/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToPixels(t *testing.T) {
	m, err := NewMapper(8, 9, 600)
	require.NoError(t, err)

	tests := []struct {
		input string
		want  float64
	}{
		{"08:00", 0},
		{"08:10", 100},
		{"08:15", 150},
		{"08:30", 300},
		{"09:00", 600},
		// outside the window: not clamped
		{"07:30", -300},
		{"09:30", 900},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := m.TimeToPixels(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err = m.TimeToPixels("8:10")
	assert.ErrorIs(t, err, models.ErrMalformedTime)
}

func TestPixelsToTime(t *testing.T) {
	m, err := NewMapper(8, 9, 600)
	require.NoError(t, err)

	assert.Equal(t, "08:00", m.PixelsToTime(0))
	assert.Equal(t, "08:10", m.PixelsToTime(100))
	assert.Equal(t, "08:10", m.PixelsToTime(104.9))
	assert.Equal(t, "08:11", m.PixelsToTime(105))
	assert.Equal(t, "09:00", m.PixelsToTime(600))
	// 59.6 minutes rounds into the next hour rather than reading 08:60
	assert.Equal(t, "09:00", m.PixelsToTime(596))
}

func TestPixelsToTimeClampsToDay(t *testing.T) {
	m, err := NewMapper(0, 24, 240)
	require.NoError(t, err)

	assert.Equal(t, "00:00", m.PixelsToTime(-50))
	assert.Equal(t, "24:00", m.PixelsToTime(500))
}

func TestMapperRoundTrip(t *testing.T) {
	windows := []struct{ start, end int }{{8, 9}, {0, 24}, {6, 18}, {13, 14}}
	widths := []float64{1, 7, 60, 333.3, 600, 1920}

	for _, w := range windows {
		for _, width := range widths {
			m, err := NewMapper(w.start, w.end, width)
			require.NoError(t, err)

			for c := models.NewClock(w.start, 0); c <= models.NewClock(w.end, 0); c++ {
				px := m.ClockToPixels(c)
				assert.Equal(t, c, m.PixelsToClock(px), "window %v width %v clock %s", w, width, c)
			}
		}
	}
}

func TestMinutePixelRatio(t *testing.T) {
	m, err := NewMapper(8, 10, 1200)
	require.NoError(t, err)

	assert.Equal(t, 100.0, m.MinutesToPixels(10))
	assert.Equal(t, 10.0, m.PixelsToMinutes(100))
	assert.Equal(t, 1200.0, m.Width())
}

func TestNewMapperRejectsBadLayout(t *testing.T) {
	_, err := NewMapper(8, 9, 0)
	assert.ErrorIs(t, err, ErrInvalidLayout)
	_, err = NewMapper(9, 9, 100)
	assert.ErrorIs(t, err, ErrInvalidLayout)
	_, err = NewMapper(-1, 9, 100)
	assert.ErrorIs(t, err, ErrInvalidLayout)
	_, err = NewMapper(20, 25, 100)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}
