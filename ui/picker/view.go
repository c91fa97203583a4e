package picker

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cheerioskun/slotpick/internal/models"
	"github.com/cheerioskun/slotpick/internal/timeline"
	zone "github.com/lrstanley/bubblezone"
)

// Styles for timeline rendering
var (
	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	trackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	allowedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("111"))

	boxStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	invalidBoxStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("111"))
)

const (
	trackRune   = '─'
	allowedRune = '▒'
	bodyRune    = "█"
)

// renderTimeline renders the axis, the track with the selection box and the labels
func (m *Model) renderTimeline() string {
	state, _ := m.engine.Selection()
	start, end := m.boxCells(state)

	parts := []string{
		m.renderAxis(),
		m.renderTrack(state, start, end),
		m.renderDurationLabel(start, end),
		m.renderRange(state),
		m.renderStatus(),
	}
	if help := m.renderHelp(); help != "" {
		parts = append(parts, help)
	}
	return strings.Join(parts, "\n")
}

// boxCells converts the selection to a half-open range of track columns, at least one wide
func (m *Model) boxCells(state timeline.State) (int, int) {
	start := int(math.Round(state.Left))
	end := int(math.Round(state.Right()))

	if start >= m.trackWidth {
		start = m.trackWidth - 1
	}
	if start < 0 {
		start = 0
	}
	if end > m.trackWidth {
		end = m.trackWidth
	}
	if end <= start {
		end = start + 1
	}
	return start, end
}

// renderAxis lays the tick labels out over the track, dropping labels that would collide
func (m *Model) renderAxis() string {
	line := []rune(strings.Repeat(" ", m.trackWidth))
	mapper := m.engine.Mapper()

	next := 0
	for _, label := range m.engine.TickLabels() {
		c, err := models.ParseClock(label)
		if err != nil {
			continue
		}

		pos := int(math.Round(mapper.ClockToPixels(c)))
		if pos+len(label) > m.trackWidth {
			pos = m.trackWidth - len(label)
		}
		if pos < next || pos < 0 {
			continue
		}

		copy(line[pos:], []rune(label))
		next = pos + len(label) + 1
	}

	return zone.Mark(m.zonePrefix+zoneAxis, axisStyle.Render(string(line)))
}

// renderTrack draws allowed ranges under the selection box and marks its hit zones
func (m *Model) renderTrack(state timeline.State, start, end int) string {
	style := boxStyle
	if !state.Valid {
		style = invalidBoxStyle
	}

	var left, body, right string
	switch width := end - start; {
	case width == 1:
		body = style.Render(bodyRune)
	default:
		left = style.Render("[")
		body = style.Render(strings.Repeat(bodyRune, width-2))
		right = style.Render("]")
	}

	var b strings.Builder
	b.WriteString(m.renderBackground(0, start))
	b.WriteString(zone.Mark(m.zonePrefix+zoneLeftHandle, left))
	b.WriteString(zone.Mark(m.zonePrefix+zoneBox, body))
	b.WriteString(zone.Mark(m.zonePrefix+zoneRightHandle, right))
	b.WriteString(m.renderBackground(end, m.trackWidth))
	return b.String()
}

// renderBackground renders columns [from, to) of the bare track
func (m *Model) renderBackground(from, to int) string {
	if from >= to {
		return ""
	}

	spans := m.engine.AllowedSpans()
	allowed := func(col int) bool {
		center := float64(col) + 0.5
		for _, s := range spans {
			if center >= s.Left && center < s.Left+s.Width {
				return true
			}
		}
		return false
	}

	var b strings.Builder
	runStart := from
	runAllowed := allowed(from)
	flush := func(until int) {
		n := until - runStart
		if runAllowed {
			b.WriteString(allowedStyle.Render(strings.Repeat(string(allowedRune), n)))
		} else {
			b.WriteString(trackStyle.Render(strings.Repeat(string(trackRune), n)))
		}
	}

	for col := from + 1; col < to; col++ {
		if a := allowed(col); a != runAllowed {
			flush(col)
			runStart, runAllowed = col, a
		}
	}
	flush(to)

	return b.String()
}

// renderDurationLabel centers "N min" under the selection box
func (m *Model) renderDurationLabel(start, end int) string {
	text := fmt.Sprintf("%s min", m.engine.DurationText())

	pos := (start+end)/2 - len(text)/2
	if pos+len(text) > m.trackWidth {
		pos = m.trackWidth - len(text)
	}
	if pos < 0 {
		pos = 0
	}

	return strings.Repeat(" ", pos) + labelStyle.Render(text)
}

// renderRange renders the selected range and its validity
func (m *Model) renderRange(state timeline.State) string {
	badge := boxStyle.Render("✓ available")
	if !state.Valid {
		badge = invalidBoxStyle.Render("✗ not available")
	}
	return fmt.Sprintf("%s %s", labelStyle.Render(m.engine.RangeLabel()), badge)
}

// renderStatus renders the status line
func (m *Model) renderStatus() string {
	state, _ := m.engine.Selection()
	summary := fmt.Sprintf("%s | %d allowed ranges | %s",
		m.status, len(m.engine.AllowedSpans()), state.Mode)
	return statusStyle.Render(summary)
}

// renderHelp renders the help text
func (m *Model) renderHelp() string {
	if !m.focused {
		return ""
	}

	var helpParts []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		helpParts = append(helpParts, fmt.Sprintf("%s:%s", h.Key, h.Desc))
	}
	helpParts = append(helpParts, "drag box or [ ] handles")

	return helpStyle.Render(strings.Join(helpParts, " | "))
}

// renderError renders the error state
func (m *Model) renderError() string {
	return errorStyle.Render(fmt.Sprintf("Error: %s", m.error))
}

// renderEmpty renders the track when there is nothing to select
func (m *Model) renderEmpty() string {
	empty := "No allowed ranges configured"
	help := helpStyle.Render("Add timeline.allowed_ranges to the config file")

	return fmt.Sprintf("%s\n%s\n\n%s\n%s",
		m.renderAxis(), m.renderBackground(0, m.trackWidth), empty, help)
}
