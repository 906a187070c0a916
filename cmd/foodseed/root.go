package main

import (
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/foodseed/internal/config"
	"github.com/JonMunkholm/foodseed/internal/logging"
)

// globalFlags are shared by every subcommand. Zero values leave the
// environment (or its defaults) in charge.
type globalFlags struct {
	driver    string
	url       string
	logLevel  string
	logFormat string
}

func newRootCmd(envLoaded bool) *cobra.Command {
	g := &globalFlags{}
	b := &bootstrapFlags{}

	root := &cobra.Command{
		Use:   "foodseed",
		Short: "Load a branded food catalog into a nutrition database",
		Long: `foodseed prepares a nutrition database in one pass:

  1. applies the schema migrations
  2. finds the best candidate CSV export and ingests it
  3. falls back to a built-in sample catalog when no file is usable
  4. creates a demo user with a few favorite foods

Running it with no subcommand performs the full bootstrap.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBootstrap(cmd, g, b, envLoaded)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.driver, "db-driver", "", "database driver: sqlite3 or pgx (env DB_DRIVER)")
	pf.StringVar(&g.url, "database-url", "", "database file path or connection URL (env DATABASE_URL)")
	pf.StringVar(&g.logLevel, "log-level", "", "debug, info, warn or error (env LOG_LEVEL)")
	pf.StringVar(&g.logFormat, "log-format", "", "text or json (env LOG_FORMAT)")

	b.register(root)

	root.AddCommand(
		newBootstrapCmd(g, envLoaded),
		newMigrateCmd(g),
		newLocateCmd(g),
		newResetCmd(g),
	)
	return root
}

// override converts the shared flags into a partial Config for config.Load.
func (g *globalFlags) override() config.Config {
	return config.Config{
		Database: config.DatabaseConfig{Driver: g.driver, URL: g.url},
		Logging:  config.LoggingConfig{Level: g.logLevel, Format: g.logFormat},
	}
}

// setup loads configuration and builds the process logger.
func setup(override config.Config) (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load(&override)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.Setup(cfg.Logging.Level, cfg.Logging.Format), nil
}
