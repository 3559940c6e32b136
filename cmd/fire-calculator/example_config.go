package main

import (
	"fmt"

	"github.com/firecalc/fire-calculator/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExampleConfigCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "example-config",
		Short: "Print or save a starter configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			example := parser.CreateExampleConfiguration()
			if opts.outputFile != "" {
				if err := parser.SaveConfiguration(example, opts.outputFile); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Example configuration written to %s\n", opts.outputFile)
				return nil
			}
			data, err := yaml.Marshal(example)
			if err != nil {
				return fmt.Errorf("failed to encode configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
