package tickslider

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cheerioskun/slotpick/internal/broadcast"
	"github.com/cheerioskun/slotpick/internal/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAdoptsValuesFromOtherWidgets(t *testing.T) {
	ch := broadcast.NewChannel()
	m := NewModel(ch)
	defer m.Close()

	var published []broadcast.Value
	ch.Subscribe(func(v broadcast.Value) { published = append(published, v) })

	ch.Publish(broadcast.Value{Text: "7", Origin: "timeline"})
	assert.Equal(t, 7, m.Value())
	// only the timeline's own publish, nothing echoed
	assert.Len(t, published, 1)

	ch.Publish(broadcast.Value{Text: "not a number", Origin: "timeline"})
	ch.Publish(broadcast.Value{Text: "42", Origin: "timeline"})
	assert.Equal(t, 7, m.Value())
}

func TestReplaysCurrentValueOnConstruction(t *testing.T) {
	ch := broadcast.NewChannelWithValue(broadcast.Value{Text: "4", Origin: "timeline"})
	m := NewModel(ch)
	defer m.Close()

	assert.Equal(t, 4, m.Value())
}

func TestSetValuePublishesOnce(t *testing.T) {
	ch := broadcast.NewChannel()
	m := NewModel(ch)
	defer m.Close()

	cmd := m.SetValue(3)
	require.NotNil(t, cmd)
	assert.Equal(t, messages.TickChangedMsg{Value: 3, SourceComponent: Origin}, cmd())

	last, ok := ch.Last()
	require.True(t, ok)
	assert.Equal(t, broadcast.Value{Text: "3", Origin: Origin}, last)

	assert.Nil(t, m.SetValue(3), "unchanged values are not republished")
	assert.Equal(t, 3, m.Value())
}

func TestSetValueClamps(t *testing.T) {
	m := NewModel(nil)

	m.SetValue(99)
	assert.Equal(t, MaxTick, m.Value())
	m.SetValue(-4)
	assert.Equal(t, MinTick, m.Value())
}

func TestKeys(t *testing.T) {
	m := NewModel(broadcast.NewChannel())
	defer m.Close()

	m.Update(keyMsg("5"))
	assert.Zero(t, m.Value(), "unfocused slider ignores keys")

	m.Focus()
	m.Update(keyMsg("5"))
	assert.Equal(t, 5, m.Value())
	m.Update(keyMsg("right"))
	assert.Equal(t, 6, m.Value())
	m.Update(keyMsg("h"))
	m.Update(keyMsg("left"))
	assert.Equal(t, 4, m.Value())
	m.Update(keyMsg("0"))
	assert.Equal(t, 10, m.Value())
	m.Update(keyMsg("+"))
	assert.Equal(t, 10, m.Value())
}

func TestView(t *testing.T) {
	m := NewModel(nil)
	m.SetValue(2)
	view := m.View()
	assert.Contains(t, view, "10")
	assert.Contains(t, view, "━━━━━━")
}

func TestBarFollowsWidth(t *testing.T) {
	m := NewModel(nil)
	m.SetSize(20, 4)
	m.SetValue(5)

	view := m.View()
	assert.Equal(t, 10, strings.Count(view, "━"))
	assert.Equal(t, 10, strings.Count(view, "─"))

	m.SetSize(60, 4)
	m.SetValue(10)
	assert.Equal(t, 60, strings.Count(m.View(), "━"))

	// never narrower than one cell per tick
	m.SetSize(3, 4)
	assert.Equal(t, MaxTick, strings.Count(m.View(), "━"))
}
