package drag

import "github.com/grindlemire/go-splitpane/internal/tree"

// State is the drag state of one controller: [Idle] or [Dragging].
type State interface {
	isState()
}

// Idle means no gesture is in progress.
type Idle struct{}

func (Idle) isState() {}

// Dragging describes the gesture in progress.
type Dragging struct {
	// Separator is the index of the sibling before the dragged separator.
	Separator int
	// Level addresses the sibling level; empty for the root level.
	Level tree.Path
	// Owner is the ID of the split owning the level; empty for the root.
	Owner string
	// Anchor is the pointer position at pointer-down.
	Anchor Point
	// Axis is the level's main axis.
	Axis tree.Direction

	start   []float64
	bounds  []tree.Bounds
	splitID string
}

func (Dragging) isState() {}

// Start returns a copy of the level sizes captured at pointer-down.
func (d Dragging) Start() []float64 {
	out := make([]float64, len(d.start))
	copy(out, d.start)
	return out
}

// Target names a separator: the boundary after sibling Index of the level
// at Level.
type Target struct {
	Level tree.Path
	Index int
}
