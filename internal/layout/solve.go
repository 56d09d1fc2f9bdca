package layout

import "github.com/grindlemire/go-splitpane/internal/tree"

// Solve maps a tree to layout instructions. It does not modify the tree
// and is safe to call on every render.
func Solve(t *tree.Tree) []Instruction {
	if t == nil {
		return nil
	}
	return solveLevel(t.Panes(), nil, t.Direction())
}

func solveLevel(panes []tree.Pane, parent tree.Path, axis tree.Direction) []Instruction {
	if len(panes) == 0 {
		return nil
	}
	out := make([]Instruction, len(panes))
	for i, p := range panes {
		path := parent.Child(i)
		in := Instruction{
			ID:      p.ID(),
			Path:    path,
			Depth:   len(parent),
			Axis:    axis,
			Percent: tree.EffectiveSize(p),
		}
		switch p := p.(type) {
		case *tree.Leaf:
			in.Content = p.Content()
		case *tree.Split:
			in.split = true
			in.Children = solveLevel(p.Children(), path, axis.Orthogonal())
		}
		out[i] = in
	}
	return out
}

// Walk visits every instruction depth-first, parents before children.
func Walk(instrs []Instruction, fn func(Instruction)) {
	for _, in := range instrs {
		fn(in)
		Walk(in.Children, fn)
	}
}

// Count returns the number of leaves and separators in the instructions.
func Count(instrs []Instruction) (leaves, separators int) {
	if len(instrs) > 1 {
		separators += len(instrs) - 1
	}
	for _, in := range instrs {
		if in.IsLeaf() {
			leaves++
			continue
		}
		l, s := Count(in.Children)
		leaves += l
		separators += s
	}
	return leaves, separators
}
