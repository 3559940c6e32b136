package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/firecalc/fire-calculator/internal/calculation"
	"github.com/firecalc/fire-calculator/internal/config"
	"github.com/firecalc/fire-calculator/internal/domain"
	"github.com/firecalc/fire-calculator/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configFile string
	format     string
	outputFile string
	logLevel   string
	workers    int
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "fire-calculator",
		Short: "Project savings toward financial independence and early retirement",
		Long: `fire-calculator projects a household's portfolio over 100 years with
federal, New York State and New York City taxes, retirement contributions and
the cost of raising children, and scores how long the money lasts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "c", "", "YAML configuration file (defaults apply when omitted)")
	pf.StringVarP(&opts.format, "format", "f", "console", "output format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	pf.StringVarP(&opts.outputFile, "output", "o", "", "write output to this file instead of stdout")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.IntVar(&opts.workers, "workers", 0, "concurrent grid cells (0 uses all CPUs)")
	pf.BoolVar(&opts.debug, "debug", false, "log every projection at debug level")

	root.AddCommand(
		newProjectCmd(opts),
		newGridCmd(opts),
		newTaxesCmd(opts),
		newBreakEvenCmd(opts),
		newExampleConfigCmd(opts),
		newServeCmd(opts),
	)
	return root
}

// newLogger builds the CLI logger: text to stderr, or JSON for the server.
func newLogger(level string, w io.Writer, asJSON bool) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)
	if asJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// setup loads the configuration and builds a logging engine.
func (o *globalOptions) setup(cmd *cobra.Command) (*domain.Configuration, *calculation.CalculationEngine, *logrus.Logger, error) {
	logger, err := newLogger(o.logLevel, cmd.ErrOrStderr(), false)
	if err != nil {
		return nil, nil, nil, err
	}

	parser := config.NewInputParser()
	cfg := config.DefaultConfiguration()
	if o.configFile != "" {
		cfg, err = parser.LoadFromFile(o.configFile)
		if err != nil {
			return nil, nil, nil, err
		}
		logger.Infof("loaded configuration from %s", o.configFile)
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	engine.Debug = o.debug
	if o.workers > 0 {
		engine.Workers = o.workers
	}
	return cfg, engine, logger, nil
}

// write renders report to the output file or the command's stdout.
func (o *globalOptions) write(cmd *cobra.Command, report *output.Report) error {
	f := output.GetFormatterByName(o.format)
	if f == nil {
		return output.GenerateReport(cmd.OutOrStdout(), report, o.format)
	}
	if o.outputFile == "" {
		return output.WriteFormatted(cmd.OutOrStdout(), f, report)
	}
	name, err := output.WriteFormattedFile(f, report, o.outputFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", name)
	return nil
}
