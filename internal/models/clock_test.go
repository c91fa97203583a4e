package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Clock
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "08:10", want: 490},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "end of day", input: "24:00", want: MinutesPerDay},
		{name: "past end of day", input: "24:01", wantErr: true},
		{name: "hour too large", input: "25:00", wantErr: true},
		{name: "minutes too large", input: "08:60", wantErr: true},
		{name: "single digit hour", input: "8:00", wantErr: true},
		{name: "no colon", input: "0800", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestFormatTime12(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"00:05", "12:05 am"},
		{"13:30", "1:30 pm"},
		{"12:00", "12:00 pm"},
		{"11:59", "11:59 am"},
		{"08:07", "8:07 am"},
		{"23:00", "11:00 pm"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := FormatTime12(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := FormatTime12("7pm")
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestAllowedRangeValidate(t *testing.T) {
	assert.NoError(t, AllowedRange{"08:10", "08:15"}.Validate(8, 9))
	assert.NoError(t, AllowedRange{"08:00", "09:00"}.Validate(8, 9))

	assert.ErrorIs(t, AllowedRange{"08:15", "08:10"}.Validate(8, 9), ErrInvalidRange)
	assert.ErrorIs(t, AllowedRange{"08:10", "08:10"}.Validate(8, 9), ErrInvalidRange)
	assert.ErrorIs(t, AllowedRange{"07:50", "08:10"}.Validate(8, 9), ErrInvalidRange)
	assert.ErrorIs(t, AllowedRange{"08:50", "09:10"}.Validate(8, 9), ErrInvalidRange)
	assert.ErrorIs(t, AllowedRange{"8:10", "08:15"}.Validate(8, 9), ErrMalformedTime)
}

func TestSortRanges(t *testing.T) {
	input := []AllowedRange{
		{"08:45", "08:50"},
		{"bogus", "08:00"},
		{"08:10", "08:15"},
		{"08:30", "08:40"},
	}

	sorted := SortRanges(input)

	assert.Equal(t, []AllowedRange{
		{"08:10", "08:15"},
		{"08:30", "08:40"},
		{"08:45", "08:50"},
		{"bogus", "08:00"},
	}, sorted)
	// input is left untouched
	assert.Equal(t, "08:45", input[0].StartTime)
}

func TestClockRange(t *testing.T) {
	day := time.Date(2024, time.March, 4, 15, 30, 0, 0, time.UTC)

	tr, err := ClockRange(day, MustParseClock("08:10"), MustParseClock("08:20"))
	require.NoError(t, err)

	assert.Equal(t, 10*time.Minute, tr.Duration())
	assert.Equal(t, time.Date(2024, time.March, 4, 8, 10, 0, 0, time.UTC), tr.Start)
	assert.Equal(t, "8:10 am a 8:20 am", tr.Label())

	outer, err := ClockRange(day, MustParseClock("08:00"), MustParseClock("09:00"))
	require.NoError(t, err)
	assert.True(t, outer.Covers(tr))
	assert.False(t, tr.Covers(outer))

	_, err = ClockRange(day, MustParseClock("09:00"), MustParseClock("08:00"))
	assert.Error(t, err)
}
