package teahost

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	splitpane "github.com/grindlemire/go-splitpane"
)

// View implements tea.Model.
func (m *Model) View() string {
	frame := m.layout.Frame()
	area := frame.Area
	if area.IsEmpty() {
		return ""
	}

	instrs := m.layout.Solve()
	if len(instrs) == 0 {
		return blank(area.Width, area.Height)
	}

	parts := splitpane.Compose(instrs, splitpane.Composer[string]{
		Leaf: func(in splitpane.Instruction) string {
			box, _ := frame.Pane(in.ID)
			return m.leaf(box)
		},
		Split: func(in splitpane.Instruction, children []string) string {
			return m.join(in.ID, in.Axis.Orthogonal(), children)
		},
	})
	return m.join("", instrs[0].Axis, parts)
}

func (m *Model) leaf(box splitpane.PaneBox) string {
	r := box.Rect
	if r.Width < 2 || r.Height < 2 {
		return blank(r.Width, r.Height)
	}

	iw, ih := r.Width-2, r.Height-2
	body := m.styles.Title.Render(box.ID)
	if text := m.content(box); text != "" {
		body += "\n" + text
	}
	body = lipgloss.NewStyle().MaxWidth(iw).MaxHeight(ih).Render(body)
	return m.styles.Box.Width(iw).Height(ih).Render(body)
}

// join lays out the rendered children of the level owned by owner along
// axis, with separators between them.
func (m *Model) join(owner string, axis splitpane.Direction, parts []string) string {
	frame := m.layout.Frame()
	drag, dragging := m.layout.DragState().(splitpane.Dragging)

	var seps []splitpane.SeparatorBox
	for _, s := range frame.Separators {
		if s.Owner == owner {
			seps = append(seps, s)
		}
	}

	out := make([]string, 0, 2*len(parts))
	for i, p := range parts {
		out = append(out, p)
		if i >= len(seps) {
			continue
		}
		sep := seps[i]
		style := m.styles.Separator
		if dragging && drag.Owner == owner && drag.Separator == sep.Index {
			style = m.styles.Active
		}
		if line := separator(sep.Rect, axis, style); line != "" {
			out = append(out, line)
		}
	}

	if axis == splitpane.Horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, out...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func separator(r splitpane.Rect, axis splitpane.Direction, style lipgloss.Style) string {
	if r.IsEmpty() {
		return ""
	}
	ch := "│"
	if axis == splitpane.Vertical {
		ch = "─"
	}
	line := strings.Repeat(ch, r.Width)
	lines := make([]string, r.Height)
	for i := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

func blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
