package main

import (
	"github.com/firecalc/fire-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newBreakEvenCmd(opts *globalOptions) *cobra.Command {
	var retFrom, retTo int
	cmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Find the largest base spending each retirement year can sustain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, engine, _, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("retirement-from") {
				retFrom = cfg.Scenario.RetirementYear
			}
			if !cmd.Flags().Changed("retirement-to") {
				retTo = retFrom
			}
			years := make([]int, 0, retTo-retFrom+1)
			for y := retFrom; y <= retTo; y++ {
				years = append(years, y)
			}

			results, err := engine.BreakEvenByRetirementYear(cmd.Context(), cfg.Scenario, years)
			if err != nil {
				return err
			}
			return opts.write(cmd, &output.Report{BreakEven: results})
		},
	}
	cmd.Flags().IntVar(&retFrom, "retirement-from", 0, "first retirement year (defaults to the configured one)")
	cmd.Flags().IntVar(&retTo, "retirement-to", 0, "last retirement year (defaults to --retirement-from)")
	return cmd
}
