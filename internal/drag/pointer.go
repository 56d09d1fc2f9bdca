package drag

import "github.com/grindlemire/go-splitpane/internal/tree"

// Point is a pointer position in host units (pixels or cells).
type Point struct {
	X, Y float64
}

// Along returns the coordinate of p on axis.
func (p Point) Along(axis tree.Direction) float64 {
	if axis == tree.Vertical {
		return p.Y
	}
	return p.X
}

// PointerKind identifies a pointer transition.
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is a device-independent pointer event. Hosts translate mouse
// and touch input into PointerEvents before handing them to the engine.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// Point returns the event position.
func (e PointerEvent) Point() Point {
	return Point{X: e.X, Y: e.Y}
}

// Container identifies a sibling level for measuring. SplitID is the
// owning split's ID, empty for the root level.
type Container struct {
	SplitID string
	Axis    tree.Direction
}

// Host is the boundary between the engine and the rendering environment.
type Host interface {
	// Measure returns the extent of the container along its axis, in the
	// same units as pointer coordinates.
	Measure(c Container) float64

	// CapturePointer routes all subsequent pointer events to fn, wherever
	// the pointer is, until the returned release function is called.
	CapturePointer(fn func(PointerEvent)) (release func())
}

// Model is the sibling-level store the controller reads and writes.
type Model interface {
	Level(path tree.Path) (tree.Level, error)

	// Commit replaces the sizes of the level at path. splitID names the
	// pane before the dragged separator.
	Commit(path tree.Path, sizes []float64, splitID string) error
}
