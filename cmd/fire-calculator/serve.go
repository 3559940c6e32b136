package main

import (
	"github.com/firecalc/fire-calculator/internal/calculation"
	"github.com/firecalc/fire-calculator/internal/config"
	"github.com/firecalc/fire-calculator/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as a JSON HTTP API",
		Long: `Serve the calculator over HTTP. Settings come from FIRE_ADDR,
FIRE_LOG_LEVEL, FIRE_GRID_WORKERS, FIRE_READ_TIMEOUT, FIRE_WRITE_TIMEOUT and
FIRE_MAX_GRID_CELLS; --addr, --log-level and --workers override them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if opts.workers > 0 {
				cfg.GridWorkers = opts.workers
			}

			logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr(), true)
			if err != nil {
				return err
			}
			engine := calculation.NewCalculationEngine()
			engine.Debug = opts.debug
			if cfg.GridWorkers > 0 {
				engine.Workers = cfg.GridWorkers
			}
			parser := &config.InputParser{MaxGridCells: cfg.MaxGridCells}

			return server.NewServer(engine, parser, logger).ListenAndServe(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
