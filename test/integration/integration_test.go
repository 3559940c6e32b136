package integration

import (
	"context"
	"testing"

	"github.com/firecalc/fire-calculator/internal/calculation"
	"github.com/firecalc/fire-calculator/internal/config"
	"github.com/firecalc/fire-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadExample(t *testing.T) *domain.Configuration {
	t.Helper()
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	return cfg
}

func TestEndToEndCalculation(t *testing.T) {
	cfg := loadExample(t)
	assert.Equal(t, []int{2, 5}, cfg.Scenario.DependentBirthYears)
	assert.Equal(t, domain.FilingMarried, cfg.Scenario.FilingStatus)

	engine := calculation.NewCalculationEngine()
	summary, err := engine.RunScenario(context.Background(), cfg.Scenario)
	require.NoError(t, err)

	assert.Len(t, summary.Projection, calculation.ProjectionYears)
	require.NotNil(t, summary.AtRetirement)
	assert.Equal(t, 15, summary.AtRetirement.Year)
	assert.True(t, summary.AtRetirement.Portfolio.IsPositive())
	assert.Equal(t, summary.Score, calculation.Score(summary.Projection))

	// both children are in the household at retirement
	assert.Equal(t, []int{13, 10}, summary.AtRetirement.DependentAges)
}

func TestGridAgreesWithDrillDown(t *testing.T) {
	cfg := loadExample(t)
	engine := calculation.NewCalculationEngine()

	grid, err := engine.ExploreGrid(context.Background(), cfg.Scenario, cfg.Grid.RetirementYears(), cfg.Grid.ChildBirthYears())
	require.NoError(t, err)
	assert.Len(t, grid.Cells, cfg.Grid.Size())
	assert.Len(t, grid.Cells, 21*12)

	for _, idx := range []int{0, 13, 100, len(grid.Cells) - 1} {
		cell := grid.Cells[idx]
		summary, err := engine.RunScenario(context.Background(), calculation.DeriveScenario(cfg.Scenario, cell.RetirementYear, cell.ChildBirthYear))
		require.NoError(t, err)
		assert.True(t, cell.Metric.Equal(summary.Score), "cell %d (%d, %d)", idx, cell.RetirementYear, cell.ChildBirthYear)
	}
}

func TestLaterRetirementNeverScoresWorseWithoutChildren(t *testing.T) {
	cfg := loadExample(t)
	engine := calculation.NewCalculationEngine()

	grid, err := engine.ExploreGrid(context.Background(), cfg.Scenario, cfg.Grid.RetirementYears(), []int{domain.NoDependent})
	require.NoError(t, err)
	for i := 1; i < len(grid.Cells); i++ {
		assert.True(t, grid.Cells[i].Metric.GreaterThanOrEqual(grid.Cells[i-1].Metric),
			"retiring after year %d scored below year %d", grid.Cells[i].RetirementYear, grid.Cells[i-1].RetirementYear)
	}
}

func TestAnalysisOfExampleGrid(t *testing.T) {
	cfg := loadExample(t)
	engine := calculation.NewCalculationEngine()

	grid, err := engine.ExploreGrid(context.Background(), cfg.Scenario, cfg.Grid.RetirementYears(), cfg.Grid.ChildBirthYears())
	require.NoError(t, err)
	analysis := calculation.AnalyzeGrid(grid)

	require.Len(t, analysis.Ranking, len(grid.Cells))
	for i := 1; i < len(analysis.Ranking); i++ {
		assert.True(t, analysis.Ranking[i-1].Metric.GreaterThanOrEqual(analysis.Ranking[i].Metric))
	}
	for child, ret := range analysis.EarliestSustainable {
		cell, ok := grid.Lookup(ret, child)
		require.True(t, ok)
		assert.True(t, cell.Metric.GreaterThanOrEqual(calculation.SustainableScore))
	}
}
