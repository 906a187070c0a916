package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/foodseed/internal/admin"
	"github.com/JonMunkholm/foodseed/internal/store"
)

var errResetNotConfirmed = errors.New("refusing to reset without --yes")

func newResetCmd(g *globalFlags) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all favorites, users and foods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errResetNotConfirmed
			}
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
			r := &admin.Resetter{DB: db}
			if err := r.ResetAll(ctx); err != nil {
				return err
			}
			log.Warn().Msg("catalog reset")
			fmt.Fprintln(cmd.OutOrStdout(), "catalog reset")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
