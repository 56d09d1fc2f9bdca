package drag

import "github.com/grindlemire/go-splitpane/internal/tree"

// Resize moves the separator after sibling i by delta percent, starting
// from start. Only siblings i and i+1 change before the level is
// normalized.
//
// The delta is first truncated to the range both siblings can absorb
// within their bounds, so the pair keeps its total. That range always
// admits a zero delta: a pair that starts outside its bounds stays put
// until the pointer moves it toward them. If no such range exists (no
// split of the pair's total satisfies both bounds) each sibling is
// clamped on its own. The truncated amount is never given to another
// sibling.
func Resize(start []float64, bounds []tree.Bounds, i int, delta float64) []float64 {
	out := make([]float64, len(start))
	copy(out, start)
	if i < 0 || i+1 >= len(start) || !finite(delta) {
		return tree.Normalize(out)
	}

	a, b := start[i], start[i+1]
	ba, bb := boundsAt(bounds, i), boundsAt(bounds, i+1)

	lo := max(ba.Min-a, b-bb.Max)
	hi := min(ba.Max-a, b-bb.Min)
	if lo <= hi {
		lo, hi = min(lo, 0), max(hi, 0)
		d := min(max(delta, lo), hi)
		out[i] = a + d
		out[i+1] = b - d
	} else {
		out[i] = ba.Clamp(a + delta)
		out[i+1] = bb.Clamp(b - delta)
	}
	return tree.Normalize(out)
}

func boundsAt(bounds []tree.Bounds, i int) tree.Bounds {
	if i < len(bounds) {
		return bounds[i]
	}
	return tree.DefaultBounds()
}
