package tree

import "slices"

// Pane is a node in the split tree: either a *Leaf or a *Split.
// The set of implementations is closed.
type Pane interface {
	// ID returns the pane's unique identifier.
	ID() string

	// Size returns the committed size in percent of the parent's main axis.
	Size() float64

	// Bounds returns the pane's size limits.
	Bounds() Bounds

	isPane()
}

// Leaf is a pane holding host-supplied content.
type Leaf struct {
	id      string
	size    float64
	bounds  Bounds
	content any
}

// NewLeaf creates a leaf pane.
func NewLeaf(id string, size float64, bounds Bounds, content any) *Leaf {
	return &Leaf{id: id, size: size, bounds: bounds, content: content}
}

func (l *Leaf) ID() string     { return l.id }
func (l *Leaf) Size() float64  { return l.size }
func (l *Leaf) Bounds() Bounds { return l.bounds }
func (l *Leaf) isPane()        {}

// Content returns the opaque content the host attached to this leaf.
func (l *Leaf) Content() any { return l.content }

// Split is a pane whose children are laid out along the axis orthogonal
// to its own level.
type Split struct {
	id       string
	size     float64
	bounds   Bounds
	children []Pane
}

// NewSplit creates a split pane. The children slice is copied.
func NewSplit(id string, size float64, bounds Bounds, children []Pane) *Split {
	return &Split{id: id, size: size, bounds: bounds, children: slices.Clone(children)}
}

func (s *Split) ID() string     { return s.id }
func (s *Split) Size() float64  { return s.size }
func (s *Split) Bounds() Bounds { return s.bounds }
func (s *Split) isPane()        {}

// Children returns a copy of the split's children.
func (s *Split) Children() []Pane { return slices.Clone(s.children) }

// Len returns the number of children.
func (s *Split) Len() int { return len(s.children) }

// Child returns the i-th child.
func (s *Split) Child(i int) Pane { return s.children[i] }

// withSize returns a copy of p with a new size.
func withSize(p Pane, size float64) Pane {
	switch p := p.(type) {
	case *Leaf:
		cp := *p
		cp.size = size
		return &cp
	case *Split:
		cp := *p
		cp.size = size
		return &cp
	}
	return p
}

// withChildren returns a copy of s with new children.
func withChildren(s *Split, children []Pane) *Split {
	cp := *s
	cp.children = children
	return &cp
}

// sizesOf returns the committed sizes of panes.
func sizesOf(panes []Pane) []float64 {
	sizes := make([]float64, len(panes))
	for i, p := range panes {
		sizes[i] = p.Size()
	}
	return sizes
}
