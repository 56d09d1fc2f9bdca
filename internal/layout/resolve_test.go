package layout

import (
	"testing"

	"github.com/grindlemire/go-splitpane/internal/tree"
)

func TestResolve_TwoPanes(t *testing.T) {
	tr := buildTree(t, tree.Horizontal, []tree.Spec{{ID: "a", Size: 60}, {ID: "b", Size: 40}})
	frame := Resolve(Solve(tr), tree.Horizontal, NewRect(0, 0, 101, 10), 1)

	a, _ := frame.Pane("a")
	b, _ := frame.Pane("b")
	if a.Rect != NewRect(0, 0, 60, 10) {
		t.Errorf("a = %+v, want {0 0 60 10}", a.Rect)
	}
	if b.Rect != NewRect(61, 0, 40, 10) {
		t.Errorf("b = %+v, want {61 0 40 10}", b.Rect)
	}

	if len(frame.Separators) != 1 {
		t.Fatalf("len(Separators) = %d, want 1", len(frame.Separators))
	}
	sep := frame.Separators[0]
	if sep.Rect != NewRect(60, 0, 1, 10) || sep.Index != 0 || sep.Owner != "" {
		t.Errorf("separator = %+v", sep)
	}

	extent, axis, ok := frame.Extent("")
	if !ok || extent != 100 || axis != tree.Horizontal {
		t.Errorf("Extent(root) = %d, %v, %v; want 100, horizontal, true", extent, axis, ok)
	}
}

func TestResolve_NestedSeparators(t *testing.T) {
	tr := buildTree(t, tree.Horizontal, nestedSpecs())
	frame := Resolve(Solve(tr), tree.Horizontal, NewRect(0, 0, 81, 21), 1)

	if got := len(frame.Leaves()); got != 3 {
		t.Errorf("len(Leaves()) = %d, want 3", got)
	}
	if len(frame.Separators) != 2 {
		t.Fatalf("len(Separators) = %d, want 2", len(frame.Separators))
	}

	var top, nested SeparatorBox
	for _, s := range frame.Separators {
		if s.Owner == "" {
			top = s
		} else {
			nested = s
		}
	}
	if top.Axis != tree.Horizontal {
		t.Errorf("top separator axis = %v, want horizontal", top.Axis)
	}
	if nested.Owner != "right" || !nested.Level.Equal(tree.Path{1}) {
		t.Errorf("nested separator = %+v, want owner right at 1", nested)
	}
	if nested.Axis != top.Axis.Orthogonal() {
		t.Errorf("nested axis = %v, want orthogonal to %v", nested.Axis, top.Axis)
	}

	right, _ := frame.Pane("right")
	tb, _ := frame.Pane("top")
	bottom, _ := frame.Pane("bottom")
	if tb.Rect.Width != right.Rect.Width || bottom.Rect.Width != right.Rect.Width {
		t.Error("nested panes should span the split's full width")
	}
	if tb.Rect.Height+bottom.Rect.Height+1 != right.Rect.Height {
		t.Errorf("nested heights %d+%d+1 != %d", tb.Rect.Height, bottom.Rect.Height, right.Rect.Height)
	}
	if nested.Rect.Y != tb.Rect.Bottom() || nested.Rect.Height != 1 {
		t.Errorf("nested separator rect = %+v", nested.Rect)
	}

	extent, axis, ok := frame.Extent("right")
	if !ok || axis != tree.Vertical || extent != right.Rect.Height-1 {
		t.Errorf("Extent(right) = %d, %v, %v", extent, axis, ok)
	}
}

func TestResolve_TilesExactly(t *testing.T) {
	type tc struct {
		sizes []float64
		width int
	}

	tests := map[string]tc{
		"thirds":         {sizes: []float64{1, 1, 1}, width: 100},
		"uneven":         {sizes: []float64{12.5, 37.5, 50}, width: 37},
		"tiny container": {sizes: []float64{10, 20, 30, 40}, width: 3},
		"zero width":     {sizes: []float64{50, 50}, width: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			specs := make([]tree.Spec, len(tt.sizes))
			for i, s := range tt.sizes {
				specs[i] = tree.Spec{Size: s}
			}
			frame := Resolve(Solve(buildTree(t, tree.Horizontal, specs)), tree.Horizontal, NewRect(0, 0, tt.width, 5), 0)

			total := 0
			x := 0
			for _, p := range frame.Panes {
				if p.Rect.Width < 0 {
					t.Errorf("%s has negative width %d", p.ID, p.Rect.Width)
				}
				if p.Rect.X != x {
					t.Errorf("%s starts at %d, want %d", p.ID, p.Rect.X, x)
				}
				x = p.Rect.Right()
				total += p.Rect.Width
			}
			if total != tt.width {
				t.Errorf("total width = %d, want %d", total, tt.width)
			}
		})
	}
}

func TestResolve_Empty(t *testing.T) {
	frame := Resolve(Solve(buildTree(t, tree.Horizontal, nil)), tree.Horizontal, NewRect(0, 0, 80, 24), 1)
	if len(frame.Panes) != 0 || len(frame.Separators) != 0 {
		t.Errorf("empty frame has %d panes, %d separators", len(frame.Panes), len(frame.Separators))
	}
	if _, _, ok := frame.Extent(""); !ok {
		t.Error("root container should still be measurable")
	}
}

func TestResolve_SinglePaneHasNoSeparator(t *testing.T) {
	tr := buildTree(t, tree.Vertical, []tree.Spec{{ID: "only", Size: 100, MinSize: f(80), MaxSize: f(90)}})
	frame := Resolve(Solve(tr), tree.Vertical, NewRect(0, 0, 80, 24), 1)
	if len(frame.Separators) != 0 {
		t.Errorf("len(Separators) = %d, want 0", len(frame.Separators))
	}
	if len(frame.Leaves()) != 1 {
		t.Errorf("len(Leaves()) = %d, want 1", len(frame.Leaves()))
	}
}

func TestFrame_HitTesting(t *testing.T) {
	tr := buildTree(t, tree.Horizontal, nestedSpecs())
	frame := Resolve(Solve(tr), tree.Horizontal, NewRect(0, 0, 81, 21), 1)
	left, _ := frame.Pane("left")
	top, _ := frame.Pane("top")

	sep, ok := frame.SeparatorAt(left.Rect.Right(), 3)
	if !ok || sep.Owner != "" || sep.Index != 0 {
		t.Errorf("SeparatorAt(root boundary) = %+v, %v", sep, ok)
	}

	sep, ok = frame.SeparatorAt(top.Rect.X+2, top.Rect.Bottom())
	if !ok || sep.Owner != "right" {
		t.Errorf("SeparatorAt(nested boundary) = %+v, %v", sep, ok)
	}

	if _, ok := frame.SeparatorAt(1, 1); ok {
		t.Error("SeparatorAt inside a pane should miss")
	}

	p, ok := frame.PaneAt(top.Rect.X+1, top.Rect.Y+1)
	if !ok || p.ID != "top" {
		t.Errorf("PaneAt() = %+v, want deepest pane top", p)
	}
}
