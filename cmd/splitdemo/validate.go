package main

import (
	"fmt"

	"github.com/spf13/cobra"

	splitpane "github.com/grindlemire/go-splitpane"
)

func newValidateCmd() *cobra.Command {
	var (
		layoutPath string
		fix        bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a layout file and report repairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := splitpane.LoadConfig(layoutPath)
			if err != nil {
				return err
			}
			layout, err := splitpane.New(cfg, nil)
			if err != nil {
				return err
			}
			defer layout.Close()

			out := cmd.OutOrStdout()
			repairs := layout.Repairs()
			for _, r := range repairs {
				fmt.Fprintf(out, "repaired %s\n", r)
			}
			if len(repairs) == 0 {
				fmt.Fprintf(out, "%s: ok\n", layoutPath)
				return nil
			}
			if !fix {
				fmt.Fprintf(out, "%s: %d repair(s); rerun with --fix to write them\n", layoutPath, len(repairs))
				return nil
			}
			if err := splitpane.SaveConfig(layoutPath, layout.Config()); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: wrote %d repair(s)\n", layoutPath, len(repairs))
			return nil
		},
	}
	cmd.Flags().StringVar(&layoutPath, "layout", "", "layout `file` (.toml, .yaml, .yml or .json)")
	cmd.Flags().BoolVar(&fix, "fix", false, "write the repaired layout back to the file")
	cmd.MarkFlagRequired("layout")
	return cmd
}
