package layout

import (
	"strings"
	"testing"

	"github.com/grindlemire/go-splitpane/internal/tree"
)

func TestCompose(t *testing.T) {
	instrs := Solve(buildTree(t, tree.Horizontal, nestedSpecs()))

	leaves := 0
	out := Compose(instrs, Composer[string]{
		Leaf: func(in Instruction) string {
			leaves++
			return in.Content.(string)
		},
		Split: func(in Instruction, children []string) string {
			sep := "|"
			if in.Children[0].Axis == tree.Vertical {
				sep = "/"
			}
			return "(" + strings.Join(children, sep) + ")"
		},
	})

	if got := strings.Join(out, "|"); got != "L|(T/B)" {
		t.Errorf("Compose() = %q, want %q", got, "L|(T/B)")
	}
	if leaves != 3 {
		t.Errorf("leaf renders = %d, want 3", leaves)
	}
}

func TestCompose_Empty(t *testing.T) {
	out := Compose(nil, Composer[int]{
		Leaf:  func(Instruction) int { return 1 },
		Split: func(Instruction, []int) int { return 2 },
	})
	if len(out) != 0 {
		t.Errorf("Compose(nil) = %v, want empty", out)
	}
}
