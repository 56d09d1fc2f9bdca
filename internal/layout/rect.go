package layout

import "github.com/grindlemire/go-splitpane/internal/tree"

// Rect represents a rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset returns a new Rect shrunk by n cells on every side.
// The result never has negative dimensions.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
	out.Width = max(out.Width, 0)
	out.Height = max(out.Height, 0)
	return out
}

// Main returns the rectangle's extent along axis.
func (r Rect) Main(axis tree.Direction) int {
	if axis == tree.Horizontal {
		return r.Width
	}
	return r.Height
}

// Cross returns the rectangle's extent across axis.
func (r Rect) Cross(axis tree.Direction) int {
	return r.Main(axis.Orthogonal())
}

// slice returns the band of r starting offset cells along axis with the
// given length, spanning the full cross extent.
func (r Rect) slice(axis tree.Direction, offset, length int) Rect {
	if axis == tree.Horizontal {
		return Rect{X: r.X + offset, Y: r.Y, Width: length, Height: r.Height}
	}
	return Rect{X: r.X, Y: r.Y + offset, Width: r.Width, Height: length}
}
