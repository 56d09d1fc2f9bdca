package tree

import "math"

// Epsilon is the tolerance used when checking that a level sums to 100.
const Epsilon = 1e-6

// Validate reports whether sizes sum to 100 within Epsilon.
func Validate(sizes []float64) bool {
	sum := 0.0
	for _, s := range sizes {
		if !isFinite(s) {
			return false
		}
		sum += s
	}
	return math.Abs(sum-100) < Epsilon
}

// inRange reports whether every size lies in [0, 100] within Epsilon.
func inRange(sizes []float64) bool {
	for _, s := range sizes {
		if !isFinite(s) || s < -Epsilon || s > 100+Epsilon {
			return false
		}
	}
	return true
}

// Normalize rescales sizes so they sum to 100 while keeping their relative
// proportions. Negative and non-finite entries count as zero. If nothing
// positive remains, the space is shared equally. The input is not modified.
func Normalize(sizes []float64) []float64 {
	out := make([]float64, len(sizes))
	if len(sizes) == 0 {
		return out
	}

	sum := 0.0
	for i, s := range sizes {
		if s > 0 && isFinite(s) {
			out[i] = s
			sum += s
		}
	}

	if sum <= 0 || math.IsInf(sum, 0) {
		even := 100 / float64(len(out))
		for i := range out {
			out[i] = even
		}
		return out
	}

	scale := 100 / sum
	largest := 0
	total := 0.0
	for i := range out {
		out[i] *= scale
		total += out[i]
		if out[i] > out[largest] {
			largest = i
		}
	}

	// The largest entry absorbs rounding residue so no entry goes negative.
	out[largest] += 100 - total
	return out
}

// EffectiveSize returns the pane's size clamped to its bounds.
func EffectiveSize(p Pane) float64 {
	return p.Bounds().Clamp(p.Size())
}
