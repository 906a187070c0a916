package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/foodseed/internal/store"
)

func newMigrateCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and print the schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup(g.override())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, err := store.Open(ctx, cfg.Database, log)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Migrate(ctx); err != nil {
				return err
			}
			v, err := db.MigrationVersion(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (%s)\n", v, db.Driver())
			return nil
		},
	}
}
