package main

import (
	"time"

	"github.com/firecalc/fire-calculator/internal/calculation"
	"github.com/firecalc/fire-calculator/internal/config"
	"github.com/firecalc/fire-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newGridCmd(opts *globalOptions) *cobra.Command {
	var (
		retFrom, retTo     int
		childFrom, childTo int
		noChild            bool
		maxCells           int
	)
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Score every retirement year and first-child year combination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, engine, logger, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("retirement-from") {
				cfg.Grid.RetirementYearFrom = retFrom
			}
			if flags.Changed("retirement-to") {
				cfg.Grid.RetirementYearTo = retTo
			}
			if flags.Changed("child-from") {
				cfg.Grid.ChildYearFrom = childFrom
			}
			if flags.Changed("child-to") {
				cfg.Grid.ChildYearTo = childTo
			}
			if flags.Changed("no-child") {
				cfg.Grid.IncludeNoChild = noChild
			}

			parser := &config.InputParser{MaxGridCells: maxCells}
			if err := parser.ValidateGrid(cfg.Grid); err != nil {
				return err
			}

			start := time.Now()
			grid, err := engine.ExploreGrid(cmd.Context(), cfg.Scenario, cfg.Grid.RetirementYears(), cfg.Grid.ChildBirthYears())
			if err != nil {
				return err
			}
			logger.Infof("scored %d cells in %s", len(grid.Cells), time.Since(start))

			analysis := calculation.AnalyzeGrid(grid)
			return opts.write(cmd, &output.Report{Grid: grid, Analysis: &analysis})
		},
	}
	f := cmd.Flags()
	f.IntVar(&retFrom, "retirement-from", 0, "first retirement year of the sweep")
	f.IntVar(&retTo, "retirement-to", 0, "last retirement year of the sweep")
	f.IntVar(&childFrom, "child-from", 0, "first child birth year of the sweep")
	f.IntVar(&childTo, "child-to", 0, "last child birth year of the sweep")
	f.BoolVar(&noChild, "no-child", true, "include the no-child column")
	f.IntVar(&maxCells, "max-cells", config.MaxGridCells, "refuse sweeps larger than this")
	return cmd
}
