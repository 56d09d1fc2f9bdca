package tree

import "math"

// Bounds are the inclusive [Min, Max] limits of a pane's size, in percent.
type Bounds struct {
	Min, Max float64
}

// DefaultBounds returns the unconstrained [0, 100] range.
func DefaultBounds() Bounds {
	return Bounds{Min: 0, Max: 100}
}

// NewBounds repairs optional caller-supplied limits. Missing or non-finite
// values take the default, values are clamped to [0, 100] and an inverted
// pair is swapped.
func NewBounds(minSize, maxSize *float64) Bounds {
	b := DefaultBounds()
	if minSize != nil && isFinite(*minSize) {
		b.Min = clamp(*minSize, 0, 100)
	}
	if maxSize != nil && isFinite(*maxSize) {
		b.Max = clamp(*maxSize, 0, 100)
	}
	if b.Min > b.Max {
		b.Min, b.Max = b.Max, b.Min
	}
	return b
}

// Clamp restricts v to the bounds.
func (b Bounds) Clamp(v float64) float64 {
	return clamp(v, b.Min, b.Max)
}

// IsDefault reports whether b is the unconstrained range.
func (b Bounds) IsDefault() bool {
	return b == DefaultBounds()
}

// Locked reports whether the bounds allow exactly one size.
func (b Bounds) Locked() bool {
	return b.Min == b.Max
}

// clamp restricts v to [lo, hi]. lo wins if the range is inverted.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
