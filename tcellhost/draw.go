package tcellhost

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	splitpane "github.com/grindlemire/go-splitpane"
)

// Draw renders the last arranged frame and shows it.
func (h *Host) Draw() {
	h.screen.Clear()
	frame := h.layout.Frame()

	for _, box := range frame.Leaves() {
		h.drawLeaf(box)
	}

	drag, dragging := h.layout.DragState().(splitpane.Dragging)
	for _, sep := range frame.Separators {
		style, ch := h.styles.Separator, tcell.RuneVLine
		if sep.Axis == splitpane.Vertical {
			ch = tcell.RuneHLine
		}
		if dragging && sep.Index == drag.Separator && sep.Level.Equal(drag.Level) {
			style = h.styles.Active
		}
		h.fill(sep.Rect, ch, style)
	}

	h.screen.Show()
}

func (h *Host) drawLeaf(box splitpane.PaneBox) {
	r := box.Rect
	if r.IsEmpty() {
		return
	}
	if r.Width < 2 || r.Height < 2 {
		h.fill(r, ' ', h.styles.Content)
		return
	}

	bs := h.styles.Border
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		h.screen.SetContent(x, r.Y, tcell.RuneHLine, nil, bs)
		h.screen.SetContent(x, bottom, tcell.RuneHLine, nil, bs)
	}
	for y := r.Y + 1; y < bottom; y++ {
		h.screen.SetContent(r.X, y, tcell.RuneVLine, nil, bs)
		h.screen.SetContent(right, y, tcell.RuneVLine, nil, bs)
	}
	h.screen.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, bs)
	h.screen.SetContent(right, r.Y, tcell.RuneURCorner, nil, bs)
	h.screen.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, bs)
	h.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, bs)

	inner := r.Inset(1)
	h.text(r.X+1, r.Y, inner.Width, " "+box.ID+" ", h.styles.Title)
	if inner.Height > 0 {
		h.text(inner.X, inner.Y, inner.Width, h.content(box), h.styles.Content)
	}
}

// text draws s on one row starting at (x, y), truncated to width cells.
func (h *Host) text(x, y, width int, s string, style tcell.Style) {
	if width <= 0 || s == "" {
		return
	}
	s = runewidth.Truncate(s, width, "…")
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		h.screen.SetContent(x, y, r, nil, style)
		x += w
	}
}

func (h *Host) fill(r splitpane.Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			h.screen.SetContent(x, y, ch, nil, style)
		}
	}
}
