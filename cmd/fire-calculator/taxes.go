package main

import (
	"fmt"

	"github.com/firecalc/fire-calculator/internal/domain"
	"github.com/firecalc/fire-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newTaxesCmd(opts *globalOptions) *cobra.Command {
	var status, state, city string
	cmd := &cobra.Command{
		Use:   "taxes GROSS",
		Short: "Break down the taxes owed on a gross income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gross, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid gross income %q: %w", args[0], err)
			}
			_, engine, _, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			probe := domain.DefaultScenarioConfig()
			probe.FilingStatus = domain.FilingStatus(status)
			probe.State = domain.StateCode(state)
			probe.City = domain.CityCode(city)
			if err := probe.Validate(); err != nil {
				return err
			}

			quote := &domain.TaxQuote{
				Gross:        gross,
				FilingStatus: probe.FilingStatus,
				State:        probe.State,
				City:         probe.City,
				Taxes:        engine.TaxCalc.ComputeTaxes(gross, probe.FilingStatus, probe.State, probe.City),
			}
			return opts.write(cmd, &output.Report{Taxes: quote})
		},
	}
	cmd.Flags().StringVar(&status, "filing-status", string(domain.FilingSingle), "single or married")
	cmd.Flags().StringVar(&state, "state", string(domain.StateNY), "ny or none")
	cmd.Flags().StringVar(&city, "city", string(domain.CityNYC), "nyc or none")
	return cmd
}
