package teahost

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	splitpane "github.com/grindlemire/go-splitpane"
)

func nested() splitpane.Config {
	return splitpane.Config{
		Direction: splitpane.Horizontal,
		Panes: []splitpane.PaneConfig{
			splitpane.Leaf("left", 50, "hello"),
			splitpane.Split("right", 50,
				splitpane.Leaf("top", 50, nil),
				splitpane.Leaf("bottom", 50, nil),
			),
		},
	}
}

func newModel(t *testing.T, opts ...Option) *Model {
	t.Helper()
	m, err := New(nested(), opts...)
	require.NoError(t, err)
	// 80 cells for panes plus a one-cell separator at x=40.
	m.Update(tea.WindowSizeMsg{Width: 81, Height: 10})
	return m
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestModel_View(t *testing.T) {
	m := newModel(t)

	view := m.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 10)
	for i, line := range lines {
		assert.Equal(t, 81, lipgloss.Width(line), "line %d", i)
	}
	assert.Contains(t, view, "left")
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, "bottom")
	assert.Contains(t, view, strings.Repeat("─", 40), "nested separator spans the right half")
}

func TestModel_ViewBeforeSize(t *testing.T) {
	m, err := New(nested())
	require.NoError(t, err)
	assert.Empty(t, m.View())
}

func TestModel_ViewEmptyLayout(t *testing.T) {
	m, err := New(splitpane.Config{})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 4, Height: 2})
	assert.Equal(t, "    \n    ", m.View())
}

func TestModel_MouseDrag(t *testing.T) {
	var events []splitpane.SplitUpdateEvent
	m := newModel(t, WithLayoutOptions(splitpane.WithOnChange(func(_ splitpane.Config, ev splitpane.SplitUpdateEvent) {
		events = append(events, ev)
	})))

	m.Update(mouse(tea.MouseActionPress, 40, 2))
	require.NotNil(t, m.capture)

	m.Update(mouse(tea.MouseActionMotion, 48, 2))
	cfg := m.Layout().Config()
	assert.InDelta(t, 60, cfg.Panes[0].Size, splitpane.Epsilon)
	assert.InDelta(t, 40, cfg.Panes[1].Size, splitpane.Epsilon)

	m.Update(mouse(tea.MouseActionRelease, 48, 2))
	assert.Nil(t, m.capture)
	assert.IsType(t, splitpane.Idle{}, m.Layout().DragState())
	assert.Len(t, events, 1)

	left, ok := m.Layout().Frame().Pane("left")
	require.True(t, ok)
	assert.Equal(t, 48, left.Rect.Width)
}

func TestModel_PressOffSeparator(t *testing.T) {
	m := newModel(t)

	m.Update(mouse(tea.MouseActionPress, 5, 2))
	assert.Nil(t, m.capture)
	assert.IsType(t, splitpane.Idle{}, m.Layout().DragState())
}

func TestModel_Quit(t *testing.T) {
	tests := map[string]tea.KeyMsg{
		"q":      {Type: tea.KeyRunes, Runes: []rune{'q'}},
		"ctrl+c": {Type: tea.KeyCtrlC},
		"esc":    {Type: tea.KeyEsc},
	}

	for name, key := range tests {
		t.Run(name, func(t *testing.T) {
			m := newModel(t)
			m.Update(mouse(tea.MouseActionPress, 40, 2))

			_, cmd := m.Update(key)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.Nil(t, m.capture, "quitting releases the pointer")
		})
	}
}

func TestModel_WithContent(t *testing.T) {
	m := newModel(t, WithContent(func(box splitpane.PaneBox) string {
		return "pane:" + box.ID
	}))
	assert.Contains(t, m.View(), "pane:top")

	_, err := New(nested(), WithContent(nil))
	assert.Error(t, err)
}
