package layout

import "github.com/grindlemire/go-splitpane/internal/tree"

// Instruction is the solved layout of one pane.
type Instruction struct {
	// ID is the pane's identifier.
	ID string

	// Path addresses the pane in the tree.
	Path tree.Path

	// Depth is the nesting depth of the pane's level (0 for root siblings).
	Depth int

	// Axis is the main axis of the level the pane belongs to.
	Axis tree.Direction

	// Percent is the pane's effective size along Axis.
	Percent float64

	// Content is the leaf's host content; nil for splits.
	Content any

	// Children are the solved children of a split, laid out along
	// Axis.Orthogonal(). Nil for leaves.
	Children []Instruction

	split bool
}

// IsLeaf reports whether the instruction describes a leaf pane.
func (in Instruction) IsLeaf() bool {
	return !in.split
}

// PaneBox is a pane's resolved rectangle.
type PaneBox struct {
	ID      string
	Path    tree.Path
	Depth   int
	Axis    tree.Direction
	Rect    Rect
	Leaf    bool
	Content any
}

// SeparatorBox is the draggable boundary between siblings Index and
// Index+1 of the level owned by Owner.
type SeparatorBox struct {
	// Level addresses the owning split; empty for the root level.
	Level tree.Path
	// Owner is the owning split's ID; empty for the root level.
	Owner string
	// Index is the sibling before the separator.
	Index int
	// Axis is the main axis of the level; the separator moves along it.
	Axis tree.Direction
	Rect Rect
}

// container is the resolved geometry of one sibling level.
type container struct {
	rect  Rect
	axis  tree.Direction
	avail int // main-axis cells shared by the panes, separators excluded
}

// Frame is the resolved geometry of a whole tree.
type Frame struct {
	Area       Rect
	Panes      []PaneBox
	Separators []SeparatorBox

	containers map[string]container
}
