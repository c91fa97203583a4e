package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cheerioskun/slotpick/internal/messages"
	"github.com/cheerioskun/slotpick/internal/timeline"
	"github.com/cheerioskun/slotpick/ui/picker"
	"github.com/cheerioskun/slotpick/ui/tickslider"
	zone "github.com/lrstanley/bubblezone"
)

// FocusedPanel represents which panel is currently focused
type FocusedPanel int

const (
	TimelinePanel FocusedPanel = iota
	SliderPanel
)

// keyMap holds the application-level bindings plus the timeline's
type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Help   key.Binding
	Quit   key.Binding
	picker picker.KeyMap
}

func defaultKeyMap(p picker.KeyMap) keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev panel")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		picker: p,
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.Next, k.Prev, k.Help, k.Quit}}, k.picker.FullHelp()...)
}

// AppModel represents the main application model
type AppModel struct {
	// Components
	picker *picker.Model
	slider *tickslider.Model
	help   help.Model
	keys   keyMap

	// UI state
	focused      FocusedPanel
	width        int
	height       int
	panels       []FocusedPanel
	currentPanel int

	// Status
	status   string
	ready    bool
	quitting bool
}

// NewAppModel creates a new application model. The engine and the slider must
// already share a channel; the composition root owns it.
func NewAppModel(engine *timeline.Engine, slider *tickslider.Model) *AppModel {
	p := picker.NewModel(engine)
	p.Focus()

	return &AppModel{
		picker:       p,
		slider:       slider,
		help:         help.New(),
		keys:         defaultKeyMap(p.Keys()),
		focused:      TimelinePanel,
		width:        80,
		height:       24,
		panels:       []FocusedPanel{TimelinePanel, SliderPanel},
		currentPanel: 0,
		status:       "Ready",
		ready:        true,
		quitting:     false,
	}
}

// Init implements tea.Model
func (m *AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.slider.SetSize(msg.Width-4, 4)
		return m, m.picker.SetSize(msg.Width-2, 9)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.nextPanel()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.prevPanel()
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m, m.routeToFocused(msg)

	case tea.MouseMsg:
		// panels only react inside their own zones
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		cmds = append(cmds, cmd)
		m.slider, cmd = m.slider.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case messages.SelectionChangedMsg:
		validity := "available"
		if !msg.State.Valid {
			validity = "not available"
		}
		m.status = fmt.Sprintf("%s (%d min, %s)", msg.Label, msg.Duration, validity)
		return m, nil

	case messages.TickChangedMsg:
		m.status = fmt.Sprintf("Duration set to %d min from %s", msg.Value, msg.SourceComponent)
		return m, nil

	case messages.LayoutErrorMsg:
		m.status = fmt.Sprintf("Layout error: %v", msg.Err)
		return m, nil
	}

	return m, nil
}

func (m *AppModel) routeToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focused {
	case TimelinePanel:
		m.picker, cmd = m.picker.Update(msg)
	case SliderPanel:
		m.slider, cmd = m.slider.Update(msg)
	}
	return cmd
}

// View implements tea.Model
func (m *AppModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	if !m.ready {
		return "Loading...\n"
	}

	return zone.Scan(m.renderLayout())
}

// renderLayout creates the main application layout
func (m *AppModel) renderLayout() string {
	header := m.renderHeader()
	timelinePanel := m.renderPanel(TimelinePanel, "⏰ Time Range", m.picker.View())
	sliderPanel := m.renderPanel(SliderPanel, "🎚 Duration (min)", m.slider.View())
	status := m.renderStatusPanel(m.width)
	helpView := m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left, header, timelinePanel, sliderPanel, status, helpView)
}

// renderHeader creates the application header
func (m *AppModel) renderHeader() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		Render("slotpick - Time Slot Picker")

	cfg := m.picker.Engine().Config()
	window := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(fmt.Sprintf("Window: %02d:00-%02d:00, ticks every %d min", cfg.StartHour, cfg.EndHour, cfg.IntervalMinutes))

	return lipgloss.JoinVertical(lipgloss.Left, title, window)
}

// renderPanel wraps panel content in a focus-aware border
func (m *AppModel) renderPanel(panel FocusedPanel, title, content string) string {
	style := m.getPanelStyle(panel, m.width)
	return style.Render(fmt.Sprintf("%s\n\n%s", title, content))
}

// renderStatusPanel renders the status panel
func (m *AppModel) renderStatusPanel(width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(max(width-2, 1)).
		Padding(0, 1)

	engine := m.picker.Engine()
	statusParts := []string{fmt.Sprintf("Status: %s", m.status)}
	if state, ok := engine.Selection(); ok {
		statusParts = append(statusParts,
			fmt.Sprintf("Shown: %s min", engine.DurationText()),
			fmt.Sprintf("Mode: %s", state.Mode))
	}
	if v := m.slider.Value(); v > 0 {
		statusParts = append(statusParts, fmt.Sprintf("Slider: %d", v))
	}

	return style.Render(strings.Join(statusParts, " | "))
}

// Helper methods

func (m *AppModel) getPanelStyle(panel FocusedPanel, width int) lipgloss.Style {
	borderColor := lipgloss.Color("240")
	if panel == m.focused {
		borderColor = lipgloss.Color("205")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(max(width-2, 1)).
		Padding(0, 1)
}

func (m *AppModel) nextPanel() {
	m.setFocus((m.currentPanel + 1) % len(m.panels))
}

func (m *AppModel) prevPanel() {
	m.setFocus((m.currentPanel - 1 + len(m.panels)) % len(m.panels))
}

func (m *AppModel) setFocus(index int) {
	m.currentPanel = index
	m.focused = m.panels[index]

	m.picker.Blur()
	m.slider.Blur()
	switch m.focused {
	case TimelinePanel:
		m.picker.Focus()
	case SliderPanel:
		m.slider.Focus()
	}
}

// Focused returns the focused panel
func (m *AppModel) Focused() FocusedPanel {
	return m.focused
}

// Status returns the status line text
func (m *AppModel) Status() string {
	return m.status
}
