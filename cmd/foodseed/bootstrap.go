package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/foodseed/internal/config"
	"github.com/JonMunkholm/foodseed/internal/core"
	"github.com/JonMunkholm/foodseed/internal/logging"
	"github.com/JonMunkholm/foodseed/internal/remote"
	"github.com/JonMunkholm/foodseed/internal/store"
)

type bootstrapFlags struct {
	sourceDir string
	rowCap    int
	batchSize int
	skipDemo  bool
	seed      uint64
}

func (b *bootstrapFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&b.sourceDir, "source-dir", "", "primary directory searched for CSV exports (env SOURCE_DIR)")
	f.IntVar(&b.rowCap, "row-cap", 0, "maximum rows ingested per file (env INGEST_ROW_CAP)")
	f.IntVar(&b.batchSize, "batch-size", 0, "successful inserts per commit (env INGEST_BATCH_SIZE)")
	f.BoolVar(&b.skipDemo, "skip-demo", false, "do not create the demo user and favorites")
	f.Uint64Var(&b.seed, "seed", 0, "seed for generated nutrition values; 0 picks a random seed")
}

func (b *bootstrapFlags) apply(base config.Config) config.Config {
	base.Source.PrimaryDir = b.sourceDir
	base.Ingest.RowCap = b.rowCap
	base.Ingest.BatchSize = b.batchSize
	return base
}

func newBootstrapCmd(g *globalFlags, envLoaded bool) *cobra.Command {
	b := &bootstrapFlags{}
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Migrate, ingest the best CSV source (or the sample catalog) and seed the demo user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBootstrap(cmd, g, b, envLoaded)
		},
	}
	b.register(cmd)
	return cmd
}

func runBootstrap(cmd *cobra.Command, g *globalFlags, b *bootstrapFlags, envLoaded bool) error {
	cfg, log, err := setup(b.apply(g.override()))
	if err != nil {
		return err
	}
	if b.skipDemo {
		cfg.Demo.Enabled = false
	}

	if envLoaded {
		log.Debug().Msg("loaded .env file")
	}
	log.Debug().Str("config", cfg.String()).Msg("configuration loaded")

	ctx := logging.WithRunID(cmd.Context(), uuid.NewString())
	log = log.FromContext(ctx)

	db, err := store.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	var values core.ValueSource = core.RandSource{}
	if b.seed != 0 {
		values = core.NewSeededSource(b.seed)
	}

	seeder := core.NewSeeder(db, cfg.Demo, log)
	boot := &core.Bootstrap{
		Locator:  core.NewLocator(cfg.Source),
		Ingester: core.NewEngine(db, cfg.Ingest, values, log),
		Fallback: seeder,
		Counter:  db.Queries(),
		Log:      log,
	}
	if cfg.Demo.Enabled {
		boot.Demo = seeder
	}
	if cfg.Remote.Enabled() {
		fetcher, err := remote.NewFetcher(cfg.Remote, cfg.Source.Pattern, log)
		if err != nil {
			return err
		}
		boot.Fetcher = fetcher
		boot.FetchDir = cfg.Source.PrimaryDir
	}

	rep, err := boot.Run(ctx)
	if err != nil {
		if errors.Is(err, core.ErrNoData) {
			log.Error().Err(err).Msg("database was left without food data")
		}
		return err
	}

	printReport(cmd.OutOrStdout(), rep)
	return nil
}

func printReport(w io.Writer, rep core.Report) {
	fmt.Fprintf(w, "run %s finished in %s\n", rep.RunID, rep.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "source:    %s\n", rep.Source)
	fmt.Fprintf(w, "inserted:  %d\n", rep.Inserted())

	for _, a := range rep.Attempts {
		if a.Err != nil {
			fmt.Fprintf(w, "skipped:   %s (%v)\n", a.Path, a.Err)
			continue
		}
		o := a.Outcome
		fmt.Fprintf(w, "file:      %s rows=%d dropped=%d truncated=%d errors=%d\n",
			o.Path, o.TotalRows, o.Dropped, o.Truncated, o.ErrorCount())
		for kind, n := range o.Errors {
			fmt.Fprintf(w, "           %s: %d - %s\n", kind, n, core.FormatRowError(kind))
		}
	}

	if rep.DemoErr != nil {
		fmt.Fprintf(w, "demo:      failed (%v)\n", rep.DemoErr)
	} else if rep.Demo.UserID != 0 {
		fmt.Fprintf(w, "demo:      user %d, %d favorites linked, %d already present\n",
			rep.Demo.UserID, rep.Demo.FavoritesLinked, rep.Demo.FavoritesSkipped)
	}
	fmt.Fprintf(w, "foods:     %d\n", rep.FoodCount)
}
