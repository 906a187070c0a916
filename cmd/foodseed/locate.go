package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/foodseed/internal/config"
	"github.com/JonMunkholm/foodseed/internal/core"
)

func newLocateCmd(g *globalFlags) *cobra.Command {
	var sourceDir string
	cmd := &cobra.Command{
		Use:   "locate",
		Short: "List candidate CSV files in the order bootstrap would try them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o := g.override()
			o.Source = config.SourceConfig{PrimaryDir: sourceDir}

			cfg, _, err := setup(o)
			if err != nil {
				return err
			}

			paths, err := core.NewLocator(cfg.Source).Locate()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(paths) == 0 {
				fmt.Fprintln(w, "no candidate files found; bootstrap would use the sample catalog")
				return nil
			}
			for i, p := range paths {
				fmt.Fprintf(w, "%2d  %s\n", i+1, p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sourceDir, "source-dir", "", "primary directory searched for CSV exports (env SOURCE_DIR)")
	return cmd
}
