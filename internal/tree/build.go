package tree

import (
	"fmt"
	"slices"
)

// Spec is the caller-supplied configuration of one pane. A spec with
// children describes a split and its content is ignored; otherwise it
// describes a leaf.
type Spec struct {
	ID       string   `json:"id" yaml:"id" toml:"id"`
	Size     float64  `json:"size" yaml:"size" toml:"size"`
	MinSize  *float64 `json:"minSize,omitempty" yaml:"minSize,omitempty" toml:"minSize,omitempty"`
	MaxSize  *float64 `json:"maxSize,omitempty" yaml:"maxSize,omitempty" toml:"maxSize,omitempty"`
	Children []Spec   `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
	Content  any      `json:"content,omitempty" yaml:"content,omitempty" toml:"content,omitempty"`
}

// Repair describes a silent fix applied while building a tree.
type Repair struct {
	Path    Path
	ID      string
	Message string
}

func (r Repair) String() string {
	if r.ID == "" {
		return fmt.Sprintf("%s: %s", r.Path, r.Message)
	}
	return fmt.Sprintf("%s (%s): %s", r.Path, r.ID, r.Message)
}

// Build constructs a tree from caller configuration. Invalid sizes and
// bounds are repaired rather than rejected; each repair is reported.
// Duplicate IDs are an error.
func Build(dir Direction, specs []Spec) (*Tree, []Repair, error) {
	b := &builder{seen: make(map[string]Path)}
	panes, err := b.level(specs, nil)
	if err != nil {
		return nil, b.repairs, err
	}
	return newTree(dir, panes), b.repairs, nil
}

type builder struct {
	seen    map[string]Path
	repairs []Repair
}

func (b *builder) repair(path Path, id, format string, args ...any) {
	b.repairs = append(b.repairs, Repair{Path: path, ID: id, Message: fmt.Sprintf(format, args...)})
}

func (b *builder) level(specs []Spec, parent Path) ([]Pane, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	raw := make([]float64, len(specs))
	for i, s := range specs {
		raw[i] = s.Size
	}
	sizes := raw
	if !Validate(raw) || !inRange(raw) {
		sizes = Normalize(raw)
		b.repair(parent, "", "sizes %v normalized to %v", raw, sizes)
	}

	panes := make([]Pane, len(specs))
	for i, s := range specs {
		path := parent.Child(i)

		id := s.ID
		if id == "" {
			id = "pane-" + path.String()
			b.repair(path, id, "missing id")
		}
		if prev, dup := b.seen[id]; dup {
			return nil, fmt.Errorf("%w: %q at %s and %s", ErrDuplicateID, id, prev, path)
		}
		b.seen[id] = slices.Clone(path)

		bounds := NewBounds(s.MinSize, s.MaxSize)
		if !boundsMatch(bounds, s.MinSize, s.MaxSize) {
			b.repair(path, id, "bounds repaired to [%v, %v]", bounds.Min, bounds.Max)
		}

		if len(s.Children) == 0 {
			panes[i] = &Leaf{id: id, size: sizes[i], bounds: bounds, content: s.Content}
			continue
		}

		if s.Content != nil {
			b.repair(path, id, "content ignored on a pane with children")
		}
		children, err := b.level(s.Children, path)
		if err != nil {
			return nil, err
		}
		panes[i] = &Split{id: id, size: sizes[i], bounds: bounds, children: children}
	}
	return panes, nil
}

// boundsMatch reports whether repaired bounds equal what the caller declared.
func boundsMatch(b Bounds, minSize, maxSize *float64) bool {
	wantMin, wantMax := 0.0, 100.0
	if minSize != nil {
		wantMin = *minSize
	}
	if maxSize != nil {
		wantMax = *maxSize
	}
	return b.Min == wantMin && b.Max == wantMax
}
