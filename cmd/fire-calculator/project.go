package main

import (
	"github.com/firecalc/fire-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newProjectCmd(opts *globalOptions) *cobra.Command {
	var (
		retirementYear int
		firstChildYear int
	)
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project one scenario year by year and score it",
		Long: `Project the configured scenario over 100 years. --retirement-year and
--first-child-year override the configuration, which makes this the
drill-down for a single grid cell.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, engine, logger, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			scenario := cfg.Scenario
			if cmd.Flags().Changed("retirement-year") {
				scenario = scenario.WithRetirementYear(retirementYear)
			}
			if cmd.Flags().Changed("first-child-year") {
				scenario = scenario.WithFirstDependent(firstChildYear)
			}

			summary, err := engine.RunScenario(cmd.Context(), scenario)
			if err != nil {
				return err
			}
			logger.Infof("score %s, runs out: %t", output.FormatScore(summary.Score), summary.RunsOut)
			return opts.write(cmd, &output.Report{Summary: summary})
		},
	}
	cmd.Flags().IntVar(&retirementYear, "retirement-year", 0, "last working year (overrides the configuration)")
	cmd.Flags().IntVar(&firstChildYear, "first-child-year", -1, "year of the first child's birth; negative for none")
	return cmd
}
