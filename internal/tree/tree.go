package tree

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrDuplicateID is returned when two panes share an ID.
	ErrDuplicateID = errors.New("duplicate pane id")
	// ErrInvalidSizes is returned when a commit would break a level's invariants.
	ErrInvalidSizes = errors.New("invalid sizes")
	// ErrNoSuchLevel is returned when a path does not address a sibling level.
	ErrNoSuchLevel = errors.New("no such level")
)

// Tree is an immutable split tree.
type Tree struct {
	direction Direction
	panes     []Pane
	index     map[string]Path // pane id -> path, shared between commits
}

// Level is one sibling list of the tree.
type Level struct {
	// Path addresses the split that owns this level; empty for the root level.
	Path Path
	// Owner is the owning split's ID; empty for the root level.
	Owner string
	// Axis is the main axis the siblings are arranged along.
	Axis Direction
	// Panes are the siblings in order.
	Panes []Pane
}

// Sizes returns the committed sizes of the level's panes.
func (l Level) Sizes() []float64 {
	return sizesOf(l.Panes)
}

// Bounds returns the bounds of the level's panes.
func (l Level) Bounds() []Bounds {
	out := make([]Bounds, len(l.Panes))
	for i, p := range l.Panes {
		out[i] = p.Bounds()
	}
	return out
}

func newTree(dir Direction, panes []Pane) *Tree {
	t := &Tree{direction: dir, panes: panes, index: make(map[string]Path)}
	t.Walk(func(p Pane, path Path, _ Direction) {
		t.index[p.ID()] = path
	})
	return t
}

// Direction returns the axis of the root level.
func (t *Tree) Direction() Direction {
	return t.direction
}

// Panes returns a copy of the root sibling list.
func (t *Tree) Panes() []Pane {
	return slices.Clone(t.panes)
}

// Len returns the number of panes in the tree, at every depth.
func (t *Tree) Len() int {
	return len(t.index)
}

// Lookup returns the path of the pane with the given ID.
func (t *Tree) Lookup(id string) (Path, bool) {
	p, ok := t.index[id]
	return p, ok
}

// Pane returns the pane at path.
func (t *Tree) Pane(path Path) (Pane, bool) {
	if len(path) == 0 {
		return nil, false
	}
	level, err := t.Level(path.Parent())
	if err != nil {
		return nil, false
	}
	idx := path[len(path)-1]
	if idx < 0 || idx >= len(level.Panes) {
		return nil, false
	}
	return level.Panes[idx], true
}

// Level returns the sibling level owned by the split at path. The empty
// path returns the root level.
func (t *Tree) Level(path Path) (Level, error) {
	panes := t.panes
	owner := ""
	for depth, idx := range path {
		if idx < 0 || idx >= len(panes) {
			return Level{}, fmt.Errorf("%w: %s", ErrNoSuchLevel, path[:depth+1])
		}
		split, ok := panes[idx].(*Split)
		if !ok {
			return Level{}, fmt.Errorf("%w: %s is a leaf", ErrNoSuchLevel, path[:depth+1])
		}
		panes = split.children
		owner = split.id
	}
	return Level{
		Path:  slices.Clone(path),
		Owner: owner,
		Axis:  t.direction.AtDepth(len(path)),
		Panes: slices.Clone(panes),
	}, nil
}

// Owners returns the IDs of the splits enclosing the level at path, nearest
// first. The root level is represented by the empty string and is always last.
func (t *Tree) Owners(path Path) ([]string, error) {
	owners := make([]string, 0, len(path)+1)
	for p := path; ; p = p.Parent() {
		level, err := t.Level(p)
		if err != nil {
			return nil, err
		}
		owners = append(owners, level.Owner)
		if len(p) == 0 {
			return owners, nil
		}
	}
}

// Commit returns a new tree with the sizes of the level at path replaced.
// sizes must match the level's length, lie in [0, 100] and sum to 100.
// The receiver is left unchanged.
func (t *Tree) Commit(path Path, sizes []float64) (*Tree, error) {
	level, err := t.Level(path)
	if err != nil {
		return nil, err
	}
	if len(sizes) != len(level.Panes) {
		return nil, fmt.Errorf("%w: got %d sizes for %d panes", ErrInvalidSizes, len(sizes), len(level.Panes))
	}
	if !Validate(sizes) {
		return nil, fmt.Errorf("%w: %v does not sum to 100", ErrInvalidSizes, sizes)
	}
	if !inRange(sizes) {
		return nil, fmt.Errorf("%w: %v outside [0, 100]", ErrInvalidSizes, sizes)
	}

	updated := make([]Pane, len(sizes))
	for i, p := range level.Panes {
		updated[i] = withSize(p, sizes[i])
	}

	return &Tree{
		direction: t.direction,
		panes:     replaceLevel(t.panes, path, updated),
		index:     t.index,
	}, nil
}

// replaceLevel copies the spine from the root to path and swaps in level.
func replaceLevel(panes []Pane, path Path, level []Pane) []Pane {
	if len(path) == 0 {
		return level
	}
	out := slices.Clone(panes)
	split := out[path[0]].(*Split)
	out[path[0]] = withChildren(split, replaceLevel(split.children, path[1:], level))
	return out
}

// Walk visits every pane depth-first, parents before children.
// axis is the main axis of the level the pane belongs to.
func (t *Tree) Walk(fn func(p Pane, path Path, axis Direction)) {
	walk(t.panes, nil, t.direction, fn)
}

func walk(panes []Pane, parent Path, axis Direction, fn func(Pane, Path, Direction)) {
	for i, p := range panes {
		path := parent.Child(i)
		fn(p, path, axis)
		if split, ok := p.(*Split); ok {
			walk(split.children, path, axis.Orthogonal(), fn)
		}
	}
}

// Check verifies that every non-empty level sums to 100 with each size in
// [0, 100].
func (t *Tree) Check() error {
	var err error
	check := func(path Path, panes []Pane) {
		if err != nil || len(panes) == 0 {
			return
		}
		sizes := sizesOf(panes)
		switch {
		case !Validate(sizes):
			err = fmt.Errorf("%w: level %s sums to %v", ErrInvalidSizes, path, sum(sizes))
		case !inRange(sizes):
			err = fmt.Errorf("%w: level %s has sizes %v outside [0, 100]", ErrInvalidSizes, path, sizes)
		}
	}
	check(nil, t.panes)
	t.Walk(func(p Pane, path Path, _ Direction) {
		if split, ok := p.(*Split); ok {
			check(path, split.children)
		}
	})
	return err
}

// Specs exports the tree in its configuration shape.
func (t *Tree) Specs() []Spec {
	return specsOf(t.panes)
}

func specsOf(panes []Pane) []Spec {
	if len(panes) == 0 {
		return nil
	}
	out := make([]Spec, len(panes))
	for i, p := range panes {
		s := Spec{ID: p.ID(), Size: p.Size()}
		b := p.Bounds()
		if b.Min != 0 {
			s.MinSize = ptr(b.Min)
		}
		if b.Max != 100 {
			s.MaxSize = ptr(b.Max)
		}
		switch p := p.(type) {
		case *Leaf:
			s.Content = p.content
		case *Split:
			s.Children = specsOf(p.children)
		}
		out[i] = s
	}
	return out
}

// IsReorder reports whether b differs from a only in the order of siblings:
// every pane keeps its parent, kind, size and bounds, and at least one
// level lists them in a different order.
func IsReorder(a, b *Tree) bool {
	if a == nil || b == nil || a.direction != b.direction || a.Len() != b.Len() {
		return false
	}

	type entry struct {
		parent string
		leaf   bool
		size   float64
		bounds Bounds
	}
	entries := func(t *Tree) (map[string]entry, []string) {
		m := make(map[string]entry, t.Len())
		var order []string
		t.Walk(func(p Pane, path Path, _ Direction) {
			parent := ""
			if len(path) > 1 {
				owner, _ := t.Pane(path.Parent())
				parent = owner.ID()
			}
			_, leaf := p.(*Leaf)
			m[p.ID()] = entry{parent: parent, leaf: leaf, size: p.Size(), bounds: p.Bounds()}
			order = append(order, p.ID())
		})
		return m, order
	}

	ma, orderA := entries(a)
	mb, orderB := entries(b)
	for id, ea := range ma {
		eb, ok := mb[id]
		if !ok || ea.parent != eb.parent || ea.leaf != eb.leaf || ea.bounds != eb.bounds {
			return false
		}
		if math.Abs(ea.size-eb.size) >= Epsilon {
			return false
		}
	}
	return !slices.Equal(orderA, orderB)
}

// Reordered returns the path of the deepest level that contains every
// sibling order change between a and b. ok is false unless b is a
// reorder of a.
func Reordered(a, b *Tree) (Path, bool) {
	if !IsReorder(a, b) {
		return nil, false
	}

	var changed []Path
	check := func(path Path, owner string, children []Pane) {
		prev := a.panes
		if owner != "" {
			p, _ := a.Lookup(owner)
			split, _ := a.Pane(p)
			prev = split.(*Split).children
		}
		if !slices.EqualFunc(prev, children, func(x, y Pane) bool { return x.ID() == y.ID() }) {
			changed = append(changed, path)
		}
	}
	check(nil, "", b.panes)
	b.Walk(func(p Pane, path Path, _ Direction) {
		if split, ok := p.(*Split); ok {
			check(path, split.id, split.children)
		}
	})

	common := changed[0]
	for _, p := range changed[1:] {
		n := 0
		for n < len(common) && n < len(p) && common[n] == p[n] {
			n++
		}
		common = common[:n]
	}
	return slices.Clone(common), true
}

func sum(sizes []float64) float64 {
	total := 0.0
	for _, s := range sizes {
		total += s
	}
	return total
}

func ptr(v float64) *float64 {
	return &v
}
