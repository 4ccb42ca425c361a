package main

import (
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/twitterverse/config"
	"github.com/katalvlaran/twitterverse/core"
	"github.com/katalvlaran/twitterverse/ingest"
	"github.com/katalvlaran/twitterverse/query"
)

var errNoData = errors.New("no data file: set --data or data: in the config")

// app carries state shared by every subcommand.
type app struct {
	cfgPath  string
	dataPath string
	logLevel string

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "twitterverse",
		Short:         "Query a Twitter-style follow graph",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "YAML config file")
	pf.StringVarP(&a.dataPath, "data", "d", "", "data file (overrides config)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	root.AddCommand(a.queryCmd(), a.userCmd(), a.serveCmd())

	return root
}

// load reads the config, applies flag overrides and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.dataPath != "" {
		cfg.Data = a.dataPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = cfg.Log.NewLogger(cmd.ErrOrStderr())

	return nil
}

// database reads the configured data file.
func (a *app) database() (*core.Database, error) {
	if a.cfg.Data == "" {
		return nil, errNoData
	}
	db, err := ingest.ReadDatabaseFile(a.cfg.Data)
	if err != nil {
		return nil, err
	}
	a.log.Info("database loaded", slog.String("path", a.cfg.Data), slog.Int("users", db.Len()))

	return db, nil
}

// engine builds a query engine over db, registering metrics in reg.
func (a *app) engine(db *core.Database, reg prometheus.Registerer) *query.Engine {
	return query.NewEngine(db,
		query.WithLogger(a.log),
		query.WithRegisterer(reg),
		query.WithMaxFrontier(a.cfg.Query.MaxFrontier),
	)
}
