package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	splitpane "github.com/grindlemire/go-splitpane"
)

type solvedPane struct {
	ID     string  `json:"id"`
	Path   string  `json:"path"`
	Leaf   bool    `json:"leaf"`
	Axis   string  `json:"axis"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Size   float64 `json:"size"`
}

type solvedSeparator struct {
	Owner  string `json:"owner"`
	Index  int    `json:"index"`
	Axis   string `json:"axis"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type solvedFrame struct {
	Panes      []solvedPane      `json:"panes"`
	Separators []solvedSeparator `json:"separators"`
}

func newSolveCmd() *cobra.Command {
	var (
		layoutPath string
		width      int
		height     int
		separator  int
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the solved geometry of a layout file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := splitpane.LoadConfig(layoutPath)
			if err != nil {
				return err
			}
			layout, err := splitpane.New(cfg, nil, splitpane.WithSeparatorSize(separator))
			if err != nil {
				return err
			}
			defer layout.Close()

			frame := solve(layout, width, height)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(frame)
			}
			printFrame(cmd.OutOrStdout(), frame)
			return nil
		},
	}
	cmd.Flags().StringVar(&layoutPath, "layout", "", "layout `file` (.toml, .yaml, .yml or .json)")
	cmd.Flags().IntVar(&width, "width", 80, "container width in cells")
	cmd.Flags().IntVar(&height, "height", 24, "container height in cells")
	cmd.Flags().IntVar(&separator, "separator", 1, "separator thickness in cells")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.MarkFlagRequired("layout")
	return cmd
}

func solve(layout *splitpane.SplitLayout, width, height int) solvedFrame {
	sizes := make(map[string]float64)
	var collect func([]splitpane.Instruction)
	collect = func(instrs []splitpane.Instruction) {
		for _, in := range instrs {
			sizes[in.ID] = in.Percent
			collect(in.Children)
		}
	}
	collect(layout.Solve())

	frame := layout.Arrange(splitpane.NewRect(0, 0, width, height))
	out := solvedFrame{
		Panes:      make([]solvedPane, 0, len(frame.Panes)),
		Separators: make([]solvedSeparator, 0, len(frame.Separators)),
	}
	for _, p := range frame.Panes {
		out.Panes = append(out.Panes, solvedPane{
			ID:     p.ID,
			Path:   p.Path.String(),
			Leaf:   p.Leaf,
			Axis:   p.Axis.String(),
			X:      p.Rect.X,
			Y:      p.Rect.Y,
			Width:  p.Rect.Width,
			Height: p.Rect.Height,
			Size:   sizes[p.ID],
		})
	}
	for _, s := range frame.Separators {
		out.Separators = append(out.Separators, solvedSeparator{
			Owner:  s.Owner,
			Index:  s.Index,
			Axis:   s.Axis.String(),
			X:      s.Rect.X,
			Y:      s.Rect.Y,
			Width:  s.Rect.Width,
			Height: s.Rect.Height,
		})
	}
	return out
}

func printFrame(w io.Writer, f solvedFrame) {
	for _, p := range f.Panes {
		indent := strings.Repeat("  ", strings.Count(p.Path, "."))
		kind := "split"
		if p.Leaf {
			kind = "leaf"
		}
		fmt.Fprintf(w, "%s%s %s %.2f%% at (%d,%d) %dx%d\n", indent, kind, p.ID, p.Size, p.X, p.Y, p.Width, p.Height)
	}
	for _, s := range f.Separators {
		owner := s.Owner
		if owner == "" {
			owner = "root"
		}
		fmt.Fprintf(w, "separator %s/%d %s at (%d,%d) %dx%d\n", owner, s.Index, s.Axis, s.X, s.Y, s.Width, s.Height)
	}
}
