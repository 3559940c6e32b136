package integration

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/firecalc/fire-calculator/internal/calculation"
	"github.com/firecalc/fire-calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	cfg := loadExample(t)
	engine := calculation.NewCalculationEngine()

	summary, err := engine.RunScenario(context.Background(), cfg.Scenario)
	require.NoError(t, err)
	grid, err := engine.ExploreGrid(context.Background(), cfg.Scenario, []int{10, 15}, []int{-1, 0})
	require.NoError(t, err)
	analysis := calculation.AnalyzeGrid(grid)

	report := &output.Report{Summary: summary, Grid: grid, Analysis: &analysis}
	for _, format := range []string{"console", "json", "yaml", "html"} {
		var buf bytes.Buffer
		assert.NoError(t, output.GenerateReport(&buf, report, format), format)
		assert.NotZero(t, buf.Len(), format)
	}

	var buf bytes.Buffer
	require.NoError(t, output.GenerateReport(&buf, report, "csv"))
	assert.Equal(t, calculation.ProjectionYears+1, strings.Count(buf.String(), "\n"))

	buf.Reset()
	require.NoError(t, output.GenerateReport(&buf, report, "grid-csv"))
	assert.Equal(t, len(grid.Cells)+1, strings.Count(buf.String(), "\n"))
}
