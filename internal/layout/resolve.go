package layout

import (
	"math"

	"github.com/grindlemire/go-splitpane/internal/tree"
)

// Resolve lays instructions out inside area. Root siblings are arranged
// along axis; separator is the thickness in cells of the boundary between
// adjacent siblings. Cells are handed out by cumulative rounding so the
// siblings of every level tile their container exactly.
func Resolve(instrs []Instruction, axis tree.Direction, area Rect, separator int) Frame {
	f := Frame{
		Area:       area,
		containers: make(map[string]container),
	}
	f.resolveLevel(instrs, nil, "", axis, area, max(separator, 0))
	return f
}

func (f *Frame) resolveLevel(instrs []Instruction, level tree.Path, owner string, axis tree.Direction, area Rect, separator int) {
	n := len(instrs)
	avail := area.Main(axis)
	if n > 1 {
		avail -= separator * (n - 1)
	}
	avail = max(avail, 0)
	f.containers[owner] = container{rect: area, axis: axis, avail: avail}
	if n == 0 {
		return
	}

	lengths := distribute(instrs, avail)
	offset := 0
	for i, in := range instrs {
		rect := area.slice(axis, offset, lengths[i])
		f.Panes = append(f.Panes, PaneBox{
			ID:      in.ID,
			Path:    in.Path,
			Depth:   in.Depth,
			Axis:    axis,
			Rect:    rect,
			Leaf:    in.IsLeaf(),
			Content: in.Content,
		})
		offset += lengths[i]

		if !in.IsLeaf() {
			f.resolveLevel(in.Children, in.Path, in.ID, axis.Orthogonal(), rect, separator)
		}

		if i < n-1 {
			f.Separators = append(f.Separators, SeparatorBox{
				Level: level,
				Owner: owner,
				Index: i,
				Axis:  axis,
				Rect:  area.slice(axis, offset, separator),
			})
			offset += separator
		}
	}
}

// distribute splits avail cells among instructions in proportion to their
// percentages. Cumulative rounding keeps the total exact.
func distribute(instrs []Instruction, avail int) []int {
	weights := make([]float64, len(instrs))
	total := 0.0
	for i, in := range instrs {
		weights[i] = max(in.Percent, 0)
		total += weights[i]
	}
	if total <= 0 {
		for i := range weights {
			weights[i] = 1
		}
		total = float64(len(weights))
	}

	lengths := make([]int, len(weights))
	cum, prev := 0.0, 0
	for i, w := range weights {
		cum += w
		end := int(math.Round(float64(avail) * cum / total))
		if i == len(weights)-1 {
			end = avail // Last one gets remainder
		}
		lengths[i] = end - prev
		prev = end
	}
	return lengths
}

// SeparatorAt returns the separator containing (x, y).
func (f Frame) SeparatorAt(x, y int) (SeparatorBox, bool) {
	for _, s := range f.Separators {
		if s.Rect.Contains(x, y) {
			return s, true
		}
	}
	return SeparatorBox{}, false
}

// PaneAt returns the deepest pane containing (x, y).
func (f Frame) PaneAt(x, y int) (PaneBox, bool) {
	var found PaneBox
	ok := false
	for _, p := range f.Panes {
		if p.Rect.Contains(x, y) && (!ok || p.Depth > found.Depth) {
			found, ok = p, true
		}
	}
	return found, ok
}

// Pane returns the box of the pane with the given ID.
func (f Frame) Pane(id string) (PaneBox, bool) {
	for _, p := range f.Panes {
		if p.ID == id {
			return p, true
		}
	}
	return PaneBox{}, false
}

// Leaves returns the boxes of all leaf panes.
func (f Frame) Leaves() []PaneBox {
	var out []PaneBox
	for _, p := range f.Panes {
		if p.Leaf {
			out = append(out, p)
		}
	}
	return out
}

// Extent returns the main-axis cells shared by the panes of the level
// owned by owner (empty for the root level), separators excluded.
func (f Frame) Extent(owner string) (int, tree.Direction, bool) {
	c, ok := f.containers[owner]
	if !ok {
		return 0, 0, false
	}
	return c.avail, c.axis, true
}

// Container returns the rectangle of the level owned by owner.
func (f Frame) Container(owner string) (Rect, bool) {
	c, ok := f.containers[owner]
	return c.rect, ok
}
