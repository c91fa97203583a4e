package picker

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cheerioskun/slotpick/internal/messages"
	"github.com/cheerioskun/slotpick/internal/timeline"
	"github.com/cheerioskun/slotpick/internal/utils"
	zone "github.com/lrstanley/bubblezone"
)

// zone ids, relative to the model's prefix
const (
	zoneAxis        = "axis"
	zoneBox         = "box"
	zoneLeftHandle  = "handle-left"
	zoneRightHandle = "handle-right"
)

// Model represents the timeline panel state
type Model struct {
	engine *timeline.Engine
	keys   KeyMap

	// UI state
	focused    bool
	width      int
	height     int
	trackWidth int
	zonePrefix string

	// Status
	status string
	error  string
}

// NewModel creates a new timeline panel around an engine
func NewModel(engine *timeline.Engine) *Model {
	return &Model{
		engine:     engine,
		keys:       DefaultKeyMap(),
		focused:    false,
		width:      int(engine.Width()) + 4,
		height:     8,
		trackWidth: int(engine.Width()),
		zonePrefix: zone.NewPrefix(),
		status:     "Ready",
	}
}

// Update handles messages for the timeline panel
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Earlier):
			return m, m.apply(m.engine.Nudge(-1))
		case key.Matches(msg, m.keys.Later):
			return m, m.apply(m.engine.Nudge(1))
		case key.Matches(msg, m.keys.Shrink):
			return m, m.apply(m.engine.ResizeBy(timeline.TargetRightHandle, -1))
		case key.Matches(msg, m.keys.Grow):
			return m, m.apply(m.engine.ResizeBy(timeline.TargetRightHandle, 1))
		case key.Matches(msg, m.keys.Extend):
			return m, m.apply(m.engine.ResizeBy(timeline.TargetLeftHandle, -1))
		case key.Matches(msg, m.keys.Trim):
			return m, m.apply(m.engine.ResizeBy(timeline.TargetLeftHandle, 1))
		}

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	return m, nil
}

// handleMouse translates terminal mouse events into pointer events
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		target, ok := m.targetAt(msg)
		if !ok {
			return nil
		}
		x, ok := m.trackX(msg)
		if !ok {
			return nil
		}
		return m.apply(m.engine.PointerDown(x, target))

	case tea.MouseActionMotion:
		if m.engine.Mode() == timeline.ModeIdle {
			return nil
		}
		x, ok := m.trackX(msg)
		if !ok {
			return nil
		}
		return m.apply(m.engine.PointerMove(x))

	case tea.MouseActionRelease:
		if m.engine.Mode() == timeline.ModeIdle {
			return nil
		}
		m.engine.PointerUp()
		return m.apply(true)
	}
	return nil
}

// targetAt resolves which part of the selection box a press landed on.
// Handles win over the body, matching how they are drawn on top of it.
func (m *Model) targetAt(msg tea.MouseMsg) (timeline.Target, bool) {
	candidates := []struct {
		id     string
		target timeline.Target
	}{
		{zoneLeftHandle, timeline.TargetLeftHandle},
		{zoneRightHandle, timeline.TargetRightHandle},
		{zoneBox, timeline.TargetBox},
	}
	for _, c := range candidates {
		if z := zone.Get(m.zonePrefix + c.id); z != nil && z.InBounds(msg) {
			return c.target, true
		}
	}
	return 0, false
}

// trackX converts an absolute terminal column to a track offset.
// Columns outside the track are passed through so the engine can clamp them.
func (m *Model) trackX(msg tea.MouseMsg) (float64, bool) {
	z := zone.Get(m.zonePrefix + zoneAxis)
	if z == nil || z.IsZero() {
		return 0, false
	}
	return float64(msg.X-z.StartX) + 0.5, true
}

// apply turns an engine change into a SelectionChangedMsg
func (m *Model) apply(changed bool) tea.Cmd {
	if !changed {
		return nil
	}

	state, ok := m.engine.Selection()
	if !ok {
		return nil
	}

	m.error = ""
	if state.Valid {
		m.status = "Selection available"
	} else {
		m.status = "Outside the allowed ranges"
	}

	label := m.engine.RangeLabel()
	duration := m.engine.DurationMinutes()
	return func() tea.Msg {
		return messages.SelectionChangedMsg{State: state, Label: label, Duration: duration}
	}
}

// View renders the timeline panel
func (m *Model) View() string {
	if m.error != "" {
		return m.renderError()
	}
	if _, ok := m.engine.Selection(); !ok {
		return m.renderEmpty()
	}
	return m.renderTimeline()
}

// Component interface methods

func (m *Model) Focus() {
	m.focused = true
}

func (m *Model) Blur() {
	m.focused = false
	// no pointer-up will arrive once focus moves away
	if m.engine.Mode() != timeline.ModeIdle {
		m.engine.PointerUp()
	}
}

func (m *Model) IsFocused() bool {
	return m.focused
}

// SetSize lays the track out to fill the panel
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height

	trackWidth := width - 4 // Leave space for borders and padding
	if err := m.engine.SetWidth(float64(trackWidth)); err != nil {
		utils.Warning("timeline: cannot lay out %d columns: %v", trackWidth, err)
		m.error = fmt.Sprintf("Terminal too narrow: %v", err)
		return func() tea.Msg { return messages.LayoutErrorMsg{Err: err} }
	}

	m.trackWidth = trackWidth
	m.error = ""
	return nil
}

// Engine returns the selection engine behind the panel
func (m *Model) Engine() *timeline.Engine {
	return m.engine
}

// Keys returns the panel key bindings
func (m *Model) Keys() KeyMap {
	return m.keys
}

// Status returns the last status line
func (m *Model) Status() string {
	return m.status
}
