package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	splitpane "github.com/grindlemire/go-splitpane"
	"github.com/grindlemire/go-splitpane/tcellhost"
	"github.com/grindlemire/go-splitpane/teahost"
)

// demoConfig is the layout shown when run is given no file.
func demoConfig() splitpane.Config {
	return splitpane.Config{
		Direction: splitpane.Horizontal,
		Panes: []splitpane.PaneConfig{
			splitpane.Bound(splitpane.Leaf("files", 25, "drag the separators"), 10, 50),
			splitpane.Split("main", 75,
				splitpane.Leaf("editor", 70, "press q to quit"),
				splitpane.Split("bottom", 30,
					splitpane.Leaf("terminal", 50, nil),
					splitpane.Leaf("problems", 50, nil),
				),
			),
		},
	}
}

func newRunCmd() *cobra.Command {
	var (
		layoutPath string
		hostName   string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a layout interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("run needs a terminal on stdout")
			}

			cfg := demoConfig()
			if layoutPath != "" {
				loaded, err := splitpane.LoadConfig(layoutPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			switch hostName {
			case "tcell":
				return runTcell(ctx, cfg)
			case "tea":
				return runTea(ctx, cfg)
			default:
				return fmt.Errorf("unknown host %q (want tcell or tea)", hostName)
			}
		},
	}
	cmd.Flags().StringVar(&layoutPath, "layout", "", "layout `file` (.toml, .yaml, .yml or .json)")
	cmd.Flags().StringVar(&hostName, "host", "tcell", "terminal host: tcell or tea")
	return cmd
}

func runTcell(ctx context.Context, cfg splitpane.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	host, err := tcellhost.New(screen, cfg)
	if err != nil {
		return err
	}
	defer host.Close()
	return host.Run(ctx)
}

func runTea(ctx context.Context, cfg splitpane.Config) error {
	model, err := teahost.New(cfg)
	if err != nil {
		return err
	}
	return model.Run(ctx)
}
