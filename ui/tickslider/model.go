// Package tickslider is a discrete 1..10 slider bound to the shared duration channel.
package tickslider

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cheerioskun/slotpick/internal/broadcast"
	"github.com/cheerioskun/slotpick/internal/messages"
	"github.com/cheerioskun/slotpick/internal/utils"
	zone "github.com/lrstanley/bubblezone"
)

// Origin tags the values this slider publishes
const Origin = "tickslider"

const (
	MinTick = 1
	MaxTick = 10
)

var (
	tickStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedTickStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("205")).
				Foreground(lipgloss.Color("0")).
				Bold(true)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Channel is the shared last-value channel the slider talks to
type Channel interface {
	Publish(v broadcast.Value)
	Subscribe(handler func(broadcast.Value)) func()
}

// KeyMap holds the slider bindings
type KeyMap struct {
	Down key.Binding
	Up   key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/h", "less")),
		Up:   key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/l", "more")),
	}
}

// Model represents the tick slider state. A zero value means nothing selected yet.
type Model struct {
	channel     Channel
	unsubscribe func()
	keys        KeyMap

	value      int
	focused    bool
	width      int
	zonePrefix string
}

// NewModel creates a slider and subscribes it to ch
func NewModel(ch Channel) *Model {
	m := &Model{
		channel:    ch,
		keys:       DefaultKeyMap(),
		width:      40,
		zonePrefix: zone.NewPrefix(),
	}
	if ch != nil {
		m.unsubscribe = ch.Subscribe(m.receive)
	}
	return m
}

// Close detaches the slider from its channel
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// receive adopts values other widgets published. Adopted values are never re-published.
func (m *Model) receive(v broadcast.Value) {
	if v.Origin == Origin {
		return
	}

	n, err := strconv.Atoi(strings.TrimSpace(v.Text))
	if err != nil || n < MinTick || n > MaxTick {
		utils.Debug("tickslider: ignoring %q from %s", v.Text, v.Origin)
		return
	}
	if n != m.value {
		m.value = n
	}
}

// Value returns the selected tick, 0 when unset
func (m *Model) Value() int {
	return m.value
}

// SetValue selects a tick on behalf of the user and publishes it
func (m *Model) SetValue(n int) tea.Cmd {
	if n < MinTick {
		n = MinTick
	}
	if n > MaxTick {
		n = MaxTick
	}
	if n == m.value {
		return nil
	}

	m.value = n
	if m.channel != nil {
		m.channel.Publish(broadcast.Value{Text: strconv.Itoa(n), Origin: Origin})
	}
	return func() tea.Msg {
		return messages.TickChangedMsg{Value: n, SourceComponent: Origin}
	}
}

// Update handles messages for the slider
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Down):
			return m, m.SetValue(m.value - 1)
		case key.Matches(msg, m.keys.Up):
			return m, m.SetValue(m.value + 1)
		}
		// digits pick a tick directly, 0 meaning 10
		if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
			n := int(s[0] - '0')
			if n == 0 {
				n = MaxTick
			}
			return m, m.SetValue(n)
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for n := MinTick; n <= MaxTick; n++ {
			if z := zone.Get(m.tickZone(n)); z != nil && z.InBounds(msg) {
				return m, m.SetValue(n)
			}
		}
	}

	return m, nil
}

func (m *Model) tickZone(n int) string {
	return fmt.Sprintf("%stick-%d", m.zonePrefix, n)
}

// View renders the slider
func (m *Model) View() string {
	ticks := make([]string, 0, MaxTick)
	for n := MinTick; n <= MaxTick; n++ {
		style := tickStyle
		if n == m.value {
			style = selectedTickStyle
		}
		ticks = append(ticks, zone.Mark(m.tickZone(n), style.Render(fmt.Sprintf("%2d", n))))
	}

	// the bar spans the panel, one segment per tick
	barWidth := max(m.width, MaxTick)
	filled := m.value * barWidth / MaxTick
	bar := barStyle.Render(strings.Repeat("━", filled)) +
		tickStyle.Render(strings.Repeat("─", barWidth-filled))

	lines := []string{strings.Join(ticks, " "), bar}
	if m.focused {
		lines = append(lines, helpStyle.Render("←/→ or 1-9,0 to pick | click a tick"))
	}
	return strings.Join(lines, "\n")
}

// Component interface methods

func (m *Model) Focus() {
	m.focused = true
}

func (m *Model) Blur() {
	m.focused = false
}

func (m *Model) IsFocused() bool {
	return m.focused
}

func (m *Model) SetSize(width, height int) {
	m.width = width
}
