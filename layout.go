// layout.go re-exports engine types from the internal packages.
// Any changes to internal types must be mirrored here.
package splitpane

import (
	"github.com/grindlemire/go-splitpane/internal/drag"
	"github.com/grindlemire/go-splitpane/internal/emit"
	"github.com/grindlemire/go-splitpane/internal/layout"
	"github.com/grindlemire/go-splitpane/internal/tree"
)

// Direction specifies the main axis along which siblings are arranged.
type Direction = tree.Direction

const (
	Horizontal = tree.Horizontal
	Vertical   = tree.Vertical
)

// Epsilon is the tolerance used when checking that sizes sum to 100.
const Epsilon = tree.Epsilon

// PaneConfig is the configuration of one pane. A pane with children is a
// split; otherwise it is a leaf holding Content.
type PaneConfig = tree.Spec

// Path addresses a pane or sibling level by child indexes from the root.
type Path = tree.Path

// Repair describes a fix applied to an invalid configuration.
type Repair = tree.Repair

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Instruction is the solved layout of one pane.
type Instruction = layout.Instruction

// Frame is a solved layout resolved to integer cells.
type Frame = layout.Frame

// PaneBox is a pane's resolved rectangle.
type PaneBox = layout.PaneBox

// SeparatorBox is a separator's resolved rectangle.
type SeparatorBox = layout.SeparatorBox

// Composer folds instructions into host visual nodes.
type Composer[V any] = layout.Composer[V]

// Host is the boundary between the engine and the rendering environment.
type Host = drag.Host

// Container identifies a sibling level for measuring.
type Container = drag.Container

// PointerEvent is a device-independent pointer event.
type PointerEvent = drag.PointerEvent

// PointerKind identifies a pointer transition.
type PointerKind = drag.PointerKind

const (
	PointerDown = drag.PointerDown
	PointerMove = drag.PointerMove
	PointerUp   = drag.PointerUp
)

// DragState is [Idle] or [Dragging].
type DragState = drag.State

// Idle means no drag is in progress.
type Idle = drag.Idle

// Dragging describes the drag in progress.
type Dragging = drag.Dragging

// SplitUpdateEvent describes one committed change as seen from one level.
// An empty SplitID names the root level.
type SplitUpdateEvent = emit.Event

// EventKind classifies a SplitUpdateEvent.
type EventKind = emit.Kind

const (
	Resize       = emit.Resize
	Reorder      = emit.Reorder
	NestedUpdate = emit.NestedUpdate
)

// Listener receives events delivered to one level.
type Listener = emit.Listener

// Unsubscribe removes a listener.
type Unsubscribe = emit.Unsubscribe

// NewRect creates a new Rect.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// Normalize rescales sizes to sum to 100, preserving their proportions.
func Normalize(sizes []float64) []float64 {
	return tree.Normalize(sizes)
}

// Validate reports whether sizes sum to 100 within Epsilon.
func Validate(sizes []float64) bool {
	return tree.Validate(sizes)
}

// Compose folds instructions bottom-up with c.
func Compose[V any](instrs []Instruction, c Composer[V]) []V {
	return layout.Compose(instrs, c)
}
