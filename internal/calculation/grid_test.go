package calculation

import (
	"context"
	"testing"
	"time"

	"github.com/firecalc/fire-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExploreGridRowMajorOrder(t *testing.T) {
	ce := NewCalculationEngine()
	retYears := []int{5, 6, 7}
	childYears := []int{domain.NoDependent, 0, 3, 10}

	grid, err := ce.ExploreGrid(context.Background(), domain.DefaultScenarioConfig(), retYears, childYears)
	require.NoError(t, err)
	require.Len(t, grid.Cells, len(retYears)*len(childYears))

	i := 0
	for ri, ret := range retYears {
		for ci, child := range childYears {
			assert.Equal(t, ret, grid.Cells[i].RetirementYear)
			assert.Equal(t, child, grid.Cells[i].ChildBirthYear)
			assert.Equal(t, grid.Cells[i], grid.Cell(ri, ci))
			i++
		}
	}
}

func TestExploreGridMatchesDirectProjection(t *testing.T) {
	ce := NewCalculationEngine()
	base := domain.DefaultScenarioConfig()
	base.DependentCount = 2
	base.DependentSpacing = 3

	grid, err := ce.ExploreGrid(context.Background(), base, []int{8, 20}, []int{domain.NoDependent, 2})
	require.NoError(t, err)

	for _, cell := range grid.Cells {
		want := Score(ce.Project(DeriveScenario(base, cell.RetirementYear, cell.ChildBirthYear)))
		assertDecimal(t, want, cell.Metric)
		assert.Equal(t, ce.Project(DeriveScenario(base, cell.RetirementYear, cell.ChildBirthYear)), ce.CellProjection(base, cell))
	}
}

func TestExploreGridDeterministicAcrossWorkerCounts(t *testing.T) {
	base := domain.DefaultScenarioConfig()
	retYears := []int{3, 10, 15, 25, 30}
	childYears := []int{domain.NoDependent, 0, 5, 12}

	serial := NewCalculationEngine()
	serial.Workers = 1
	parallel := NewCalculationEngine()
	parallel.Workers = 8

	a, err := serial.ExploreGrid(context.Background(), base, retYears, childYears)
	require.NoError(t, err)
	b, err := parallel.ExploreGrid(context.Background(), base, retYears, childYears)
	require.NoError(t, err)
	c, err := parallel.ExploreGrid(context.Background(), base, retYears, childYears)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
}

func TestExploreGridNoChildSentinel(t *testing.T) {
	ce := NewCalculationEngine()
	base := domain.DefaultScenarioConfig()

	grid, err := ce.ExploreGrid(context.Background(), base, []int{15}, []int{domain.NoDependent, -7})
	require.NoError(t, err)

	noChild := Score(ce.Project(base.WithRetirementYear(15)))
	for _, cell := range grid.Cells {
		assert.False(t, cell.HasChild())
		assertDecimal(t, noChild, cell.Metric)
	}
}

func TestExploreGridZeroDependentCount(t *testing.T) {
	base := domain.DefaultScenarioConfig()
	base.DependentCount = 0

	cfg := DeriveScenario(base, 12, 4)
	assert.Empty(t, cfg.DependentBirthYears)
	assert.Equal(t, 12, cfg.RetirementYear)
}

func TestDeriveScenarioLeavesBaseUntouched(t *testing.T) {
	base := domain.DefaultScenarioConfig()
	base.DependentBirthYears = []int{1}
	base.DependentCount = 3
	base.DependentSpacing = 2

	derived := DeriveScenario(base, 9, 6)
	assert.Equal(t, []int{6, 8, 10}, derived.DependentBirthYears)
	assert.Equal(t, 9, derived.RetirementYear)
	assert.Equal(t, []int{1}, base.DependentBirthYears)
	assert.Equal(t, 15, base.RetirementYear)
}

func TestExploreGridEmptyRanges(t *testing.T) {
	ce := NewCalculationEngine()
	grid, err := ce.ExploreGrid(context.Background(), domain.DefaultScenarioConfig(), nil, []int{0, 1})
	require.NoError(t, err)
	assert.Empty(t, grid.Cells)
}

func TestExploreGridCancelled(t *testing.T) {
	ce := NewCalculationEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ce.ExploreGrid(ctx, domain.DefaultScenarioConfig(), []int{5, 6}, []int{0, 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExploreGridEarlierRetirementScoresNoHigher(t *testing.T) {
	ce := NewCalculationEngine()
	base := domain.DefaultScenarioConfig()
	base.InitialPortfolio = decimal.Zero

	grid, err := ce.ExploreGrid(context.Background(), base, []int{1, 40}, []int{domain.NoDependent})
	require.NoError(t, err)

	// retiring after one year runs out in year 3; forty working years never does
	assertDecimal(t, decimal.NewFromInt(3), grid.Cells[0].Metric)
	assert.True(t, grid.Cells[1].Metric.GreaterThanOrEqual(SustainableScore))
}

func TestExploreGridLogsElapsedTime(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	SetNowFunc(func() time.Time { return fixed })
	defer SetNowFunc(time.Now)

	rec := &recordingLogger{}
	ce := NewCalculationEngine()
	ce.SetLogger(rec)
	_, err := ce.ExploreGrid(context.Background(), domain.DefaultScenarioConfig(), []int{1}, []int{domain.NoDependent})
	require.NoError(t, err)
	assert.Contains(t, rec.debug, "grid: %d cells on %d workers in %s")
}

func TestExploreGridReturnsGridWithLiveContext(t *testing.T) {
	ce := NewCalculationEngine()
	grid, err := ce.ExploreGrid(context.Background(), domain.DefaultScenarioConfig(), []int{5, 6}, []int{domain.NoDependent, 0})
	require.NoError(t, err)
	require.NotNil(t, grid)
	assert.Len(t, grid.Cells, 4)
	for _, c := range grid.Cells {
		assert.True(t, c.Metric.IsPositive(), "retire %d child %d", c.RetirementYear, c.ChildBirthYear)
	}
}
