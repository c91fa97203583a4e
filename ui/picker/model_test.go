package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cheerioskun/slotpick/internal/messages"
	"github.com/cheerioskun/slotpick/internal/models"
	"github.com/cheerioskun/slotpick/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, ranges ...models.AllowedRange) *Model {
	t.Helper()
	cfg := timeline.Config{StartHour: 8, EndHour: 9, IntervalMinutes: 15, AllowedRanges: ranges}
	engine, err := timeline.NewEngine(cfg, 60)
	require.NoError(t, err)
	t.Cleanup(engine.Close)
	return NewModel(engine)
}

func selectionMsg(t *testing.T, cmd tea.Cmd) messages.SelectionChangedMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.SelectionChangedMsg)
	require.True(t, ok)
	return msg
}

func TestKeyboardMovesSelection(t *testing.T) {
	m := newTestModel(t, models.AllowedRange{StartTime: "08:10", EndTime: "08:30"})

	_, cmd := m.Update(runes("l"))
	assert.Nil(t, cmd, "unfocused panels ignore keys")

	m.Focus()
	_, cmd = m.Update(runes("l"))
	msg := selectionMsg(t, cmd)
	assert.Equal(t, 11.0, msg.State.Left)
	assert.Equal(t, "8:11 am a 8:21 am", msg.Label)
	assert.True(t, msg.State.Valid)
	assert.Equal(t, 10, msg.Duration)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 10.0, selectionMsg(t, cmd).State.Left)

	_, cmd = m.Update(runes("H"))
	msg = selectionMsg(t, cmd)
	assert.Equal(t, 9.0, msg.State.Width)
	assert.Equal(t, 9, msg.Duration)

	_, cmd = m.Update(runes("<"))
	msg = selectionMsg(t, cmd)
	assert.Equal(t, 9.0, msg.State.Left)
	assert.Equal(t, 10.0, msg.State.Width)
	assert.False(t, msg.State.Valid, "starts before 08:10")
	assert.Equal(t, "Outside the allowed ranges", m.Status())

	_, cmd = m.Update(runes(">"))
	msg = selectionMsg(t, cmd)
	assert.Equal(t, 10.0, msg.State.Left)
	assert.True(t, msg.State.Valid)
}

func TestMouseReleaseEndsInteraction(t *testing.T) {
	m := newTestModel(t, models.AllowedRange{StartTime: "08:10", EndTime: "08:30"})

	_, cmd := m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd, "release while idle is ignored")

	require.True(t, m.Engine().PointerDown(12, timeline.TargetBox))
	_, cmd = m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	msg := selectionMsg(t, cmd)
	assert.Equal(t, timeline.ModeIdle, msg.State.Mode)
}

func TestBlurEndsInteraction(t *testing.T) {
	m := newTestModel(t, models.AllowedRange{StartTime: "08:10", EndTime: "08:30"})
	m.Focus()

	require.True(t, m.Engine().PointerDown(20, timeline.TargetRightHandle))
	m.Blur()
	assert.Equal(t, timeline.ModeIdle, m.Engine().Mode())
	assert.False(t, m.IsFocused())
}

func TestSetSizeRelaysTrack(t *testing.T) {
	m := newTestModel(t, models.AllowedRange{StartTime: "08:10", EndTime: "08:30"})

	assert.Nil(t, m.SetSize(124, 10))
	state, ok := m.Engine().Selection()
	require.True(t, ok)
	assert.Equal(t, 20.0, state.Left)
	assert.Equal(t, 20.0, state.Width)

	cmd := m.SetSize(3, 10)
	require.NotNil(t, cmd)
	errMsg, ok := cmd().(messages.LayoutErrorMsg)
	require.True(t, ok)
	assert.ErrorIs(t, errMsg.Err, timeline.ErrInvalidLayout)
	assert.Contains(t, m.View(), "Terminal too narrow")

	assert.Nil(t, m.SetSize(64, 10))
	assert.NotContains(t, m.View(), "Terminal too narrow")
}

func TestView(t *testing.T) {
	m := newTestModel(t, models.AllowedRange{StartTime: "08:10", EndTime: "08:30"})
	m.Focus()

	view := m.View()
	assert.Contains(t, view, "08:00")
	assert.Contains(t, view, "[")
	assert.Contains(t, view, "]")
	assert.Contains(t, view, "10 min")
	assert.Contains(t, view, "8:10 am a 8:20 am")
	assert.Contains(t, view, "available")
	assert.Contains(t, view, "←/h:earlier")
}

func TestViewWithoutAllowedRanges(t *testing.T) {
	m := newTestModel(t)

	assert.Contains(t, m.View(), "No allowed ranges configured")

	m.Focus()
	_, cmd := m.Update(runes("l"))
	assert.Nil(t, cmd)
}
