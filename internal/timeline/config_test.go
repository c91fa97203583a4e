package timeline

import (
	"testing"

	"github.com/cheerioskun/slotpick/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestTickLabels(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "aligned interval includes the end",
			cfg:  Config{StartHour: 8, EndHour: 9, IntervalMinutes: 15},
			want: []string{"08:00", "08:15", "08:30", "08:45", "09:00"},
		},
		{
			name: "unaligned interval stops short",
			cfg:  Config{StartHour: 8, EndHour: 9, IntervalMinutes: 25},
			want: []string{"08:00", "08:25", "08:50"},
		},
		{
			name: "steps across hours",
			cfg:  Config{StartHour: 8, EndHour: 10, IntervalMinutes: 45},
			want: []string{"08:00", "08:45", "09:30"},
		},
		{
			name: "hourly over a full day",
			cfg:  Config{StartHour: 22, EndHour: 24, IntervalMinutes: 60},
			want: []string{"22:00", "23:00", "24:00"},
		},
		{
			name: "zero interval yields nothing",
			cfg:  Config{StartHour: 8, EndHour: 9},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.cfg.TickLabels()); diff != "" {
				t.Errorf("TickLabels() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDefaultTickLabels(t *testing.T) {
	labels := DefaultConfig().TickLabels()
	assert.Len(t, labels, 13)
	assert.Equal(t, "08:00", labels[0])
	assert.Equal(t, "09:00", labels[12])
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		StartHour:       8,
		EndHour:         9,
		IntervalMinutes: 5,
		AllowedRanges:   []models.AllowedRange{{StartTime: "08:10", EndTime: "08:15"}},
	}
	assert.NoError(t, valid.Validate())
	assert.Equal(t, 60, valid.TotalMinutes())

	outside := valid
	outside.AllowedRanges = []models.AllowedRange{{StartTime: "08:50", EndTime: "09:10"}}
	assert.ErrorIs(t, outside.Validate(), models.ErrInvalidRange)

	inverted := valid
	inverted.StartHour, inverted.EndHour = 10, 9
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidLayout)

	noInterval := valid
	noInterval.IntervalMinutes = -5
	assert.ErrorIs(t, noInterval.Validate(), ErrInvalidInterval)
}
