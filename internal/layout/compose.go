package layout

// Composer builds host visual nodes from instructions.
type Composer[V any] struct {
	// Leaf renders a leaf pane.
	Leaf func(in Instruction) V

	// Split combines the already-composed children of a split pane.
	Split func(in Instruction, children []V) V
}

// Compose folds instructions bottom-up into one visual node per root
// sibling. The engine never renders content itself; the host supplies
// both functions.
func Compose[V any](instrs []Instruction, c Composer[V]) []V {
	if len(instrs) == 0 {
		return nil
	}
	out := make([]V, len(instrs))
	for i, in := range instrs {
		if in.IsLeaf() {
			out[i] = c.Leaf(in)
			continue
		}
		out[i] = c.Split(in, Compose(in.Children, c))
	}
	return out
}
