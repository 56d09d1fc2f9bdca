package tree

import (
	"errors"
	"strings"
	"testing"
)

// nestedSpecs is a root of two panes where the second holds two nested panes.
func nestedSpecs() []Spec {
	return []Spec{
		{ID: "left", Size: 50, Content: "L"},
		{ID: "right", Size: 50, Children: []Spec{
			{ID: "top", Size: 50, Content: "T"},
			{ID: "bottom", Size: 50, Content: "B"},
		}},
	}
}

func TestBuild_Nested(t *testing.T) {
	tr, repairs, err := Build(Horizontal, nestedSpecs())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(repairs) != 0 {
		t.Errorf("Build() repairs = %v, want none", repairs)
	}
	if tr.Len() != 5 {
		t.Errorf("Len() = %d, want 5", tr.Len())
	}

	path, ok := tr.Lookup("bottom")
	if !ok || !path.Equal(Path{1, 1}) {
		t.Errorf("Lookup(bottom) = %v, %v; want 1.1", path, ok)
	}

	p, ok := tr.Pane(Path{1})
	if !ok {
		t.Fatal("Pane(1) not found")
	}
	split, ok := p.(*Split)
	if !ok {
		t.Fatalf("Pane(1) = %T, want *Split", p)
	}
	if split.Len() != 2 {
		t.Errorf("split.Len() = %d, want 2", split.Len())
	}

	leaf, ok := split.Child(0).(*Leaf)
	if !ok || leaf.Content() != "T" {
		t.Errorf("split.Child(0) = %+v, want leaf with content T", split.Child(0))
	}
}

func TestBuild_Repairs(t *testing.T) {
	type tc struct {
		specs       []Spec
		wantSizes   []float64
		wantRepairs []string
	}

	tests := map[string]tc{
		"sizes normalized": {
			specs:       []Spec{{ID: "a", Size: 1}, {ID: "b", Size: 3}},
			wantSizes:   []float64{25, 75},
			wantRepairs: []string{"normalized"},
		},
		"all zero sizes shared": {
			specs:       []Spec{{ID: "a"}, {ID: "b"}},
			wantSizes:   []float64{50, 50},
			wantRepairs: []string{"normalized"},
		},
		"negative size in a level summing to 100": {
			specs:       []Spec{{ID: "a", Size: -10}, {ID: "b", Size: 60}, {ID: "c", Size: 50}},
			wantSizes:   []float64{0, 600.0 / 11, 500.0 / 11},
			wantRepairs: []string{"normalized"},
		},
		"size over 100 in a level summing to 100": {
			specs:       []Spec{{ID: "a", Size: 120}, {ID: "b", Size: -20}},
			wantSizes:   []float64{100, 0},
			wantRepairs: []string{"normalized"},
		},
		"missing id generated": {
			specs:       []Spec{{Size: 100}},
			wantSizes:   []float64{100},
			wantRepairs: []string{"missing id"},
		},
		"negative bounds clamped": {
			specs:       []Spec{{ID: "a", Size: 100, MinSize: f(-10)}},
			wantSizes:   []float64{100},
			wantRepairs: []string{"bounds repaired"},
		},
		"children win over content": {
			specs: []Spec{{ID: "a", Size: 100, Content: "dropped", Children: []Spec{
				{ID: "b", Size: 100},
			}}},
			wantSizes:   []float64{100},
			wantRepairs: []string{"content ignored"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr, repairs, err := Build(Horizontal, tt.specs)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			level, err := tr.Level(nil)
			if err != nil {
				t.Fatalf("Level() error = %v", err)
			}
			if !approxEqual(level.Sizes(), tt.wantSizes) {
				t.Errorf("sizes = %v, want %v", level.Sizes(), tt.wantSizes)
			}
			if len(repairs) != len(tt.wantRepairs) {
				t.Fatalf("repairs = %v, want %d", repairs, len(tt.wantRepairs))
			}
			for i, want := range tt.wantRepairs {
				if !strings.Contains(repairs[i].String(), want) {
					t.Errorf("repair[%d] = %q, want it to mention %q", i, repairs[i], want)
				}
			}
			if err := tr.Check(); err != nil {
				t.Errorf("Check() error = %v", err)
			}
		})
	}
}

func TestBuild_ChildrenWinOverContent(t *testing.T) {
	tr, _, err := Build(Horizontal, []Spec{{ID: "a", Size: 100, Content: "x", Children: []Spec{{ID: "b", Size: 100}}}})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	p, _ := tr.Pane(Path{0})
	if _, ok := p.(*Split); !ok {
		t.Errorf("pane = %T, want *Split", p)
	}
}

func TestBuild_DuplicateID(t *testing.T) {
	_, _, err := Build(Horizontal, []Spec{
		{ID: "a", Size: 50},
		{ID: "b", Size: 50, Children: []Spec{{ID: "a", Size: 100}}},
	})
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Build() error = %v, want ErrDuplicateID", err)
	}
}

func TestBuild_Empty(t *testing.T) {
	tr, repairs, err := Build(Vertical, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if tr.Len() != 0 || len(tr.Panes()) != 0 {
		t.Errorf("empty tree has %d panes", tr.Len())
	}
	if len(repairs) != 0 {
		t.Errorf("repairs = %v, want none", repairs)
	}
	if err := tr.Check(); err != nil {
		t.Errorf("Check() error = %v", err)
	}
}

func TestBuild_EveryLevelSumsTo100(t *testing.T) {
	specs := []Spec{
		{ID: "a", Size: 3},
		{ID: "b", Size: 7, Children: []Spec{
			{ID: "c", Size: 10},
			{ID: "d", Size: 10, Children: []Spec{
				{ID: "e", Size: -4},
				{ID: "f", Size: 0},
				{ID: "g", Size: 1e9},
			}},
			{ID: "h", Size: 80, Children: []Spec{
				{ID: "i", Size: -10},
				{ID: "j", Size: 60},
				{ID: "k", Size: 50},
			}},
		}},
	}
	tr, _, err := Build(Horizontal, specs)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if err := tr.Check(); err != nil {
		t.Errorf("Check() error = %v", err)
	}
	tr.Walk(func(p Pane, path Path, _ Direction) {
		if p.Size() < 0 || p.Size() > 100 {
			t.Errorf("pane %s at %s has size %v outside [0, 100]", p.ID(), path, p.Size())
		}
	})
}
