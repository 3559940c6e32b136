package calculation

import (
	"context"
	"fmt"
	"runtime"

	"github.com/firecalc/fire-calculator/internal/domain"
)

// CalculationEngine orchestrates projections, scoring and grid sweeps
type CalculationEngine struct {
	TaxCalc *TaxCalculator
	Limits  ContributionLimits
	Workers int  // Concurrent grid cells; <= 0 means GOMAXPROCS
	Debug   bool // Enable debug output for each projection
	Logger  Logger
}

// NewCalculationEngine creates a calculation engine with the built-in policy tables
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		TaxCalc: NewTaxCalculator2024(),
		Limits:  DefaultContributionLimits(),
		Workers: runtime.GOMAXPROCS(0),
		Logger:  NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunScenario validates cfg, projects it and summarizes the result
func (ce *CalculationEngine) RunScenario(ctx context.Context, cfg domain.ScenarioConfig) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	cfg = cfg.Normalize()

	projection := ce.Project(cfg)
	summary := &domain.ScenarioSummary{
		Config:     cfg,
		Projection: projection,
		Score:      Score(projection),
	}
	if year, ok := RunsOutYear(projection); ok {
		summary.RunsOut = true
		summary.RunsOutYear = year
	}
	if cfg.RetirementYear >= 1 && cfg.RetirementYear <= len(projection) {
		at := projection[cfg.RetirementYear-1]
		summary.AtRetirement = &at
	}
	summary.FinalPortfolio = projection[len(projection)-1].Portfolio

	ce.Logger.Debugf("scenario: retirement year %d score %s runs out %t",
		cfg.RetirementYear, summary.Score.StringFixed(2), summary.RunsOut)
	return summary, nil
}
