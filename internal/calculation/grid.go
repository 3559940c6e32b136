package calculation

import (
	"context"
	"runtime"

	"github.com/firecalc/fire-calculator/internal/domain"
	"golang.org/x/sync/errgroup"
)

// DeriveScenario returns base with the retirement year replaced and the
// dependent birth years derived from firstChildYear using base's dependent
// count and spacing. A negative firstChildYear means no dependents.
func DeriveScenario(base domain.ScenarioConfig, retirementYear, firstChildYear int) domain.ScenarioConfig {
	return base.WithRetirementYear(retirementYear).WithFirstDependent(firstChildYear)
}

// ExploreGrid scores every (retirement year, first-child year) pair. Cells are
// returned row-major in the order of the supplied ranges; only the score of
// each projection is kept. Cells run concurrently on ce.Workers goroutines and
// the result does not depend on scheduling.
func (ce *CalculationEngine) ExploreGrid(ctx context.Context, base domain.ScenarioConfig, retirementYears, childBirthYears []int) (*domain.Grid, error) {
	start := nowFunc()
	grid := &domain.Grid{
		RetirementYears: append([]int(nil), retirementYears...),
		ChildBirthYears: append([]int(nil), childBirthYears...),
		Cells:           make([]domain.GridCell, len(retirementYears)*len(childBirthYears)),
	}

	workers := ce.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// gctx is cancelled once Wait returns; the caller's ctx is checked after.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for ri, retYear := range grid.RetirementYears {
		for ci, childYear := range grid.ChildBirthYears {
			if gctx.Err() != nil {
				break
			}
			idx := ri*len(grid.ChildBirthYears) + ci
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				cfg := DeriveScenario(base, retYear, childYear)
				grid.Cells[idx] = domain.GridCell{
					RetirementYear: retYear,
					ChildBirthYear: childYear,
					Metric:         Score(ce.Project(cfg)),
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ce.Logger.Debugf("grid: %d cells on %d workers in %s", len(grid.Cells), workers, nowFunc().Sub(start))
	return grid, nil
}

// CellProjection recomputes the full projection behind one grid cell.
func (ce *CalculationEngine) CellProjection(base domain.ScenarioConfig, cell domain.GridCell) []domain.YearlyRecord {
	return ce.Project(DeriveScenario(base, cell.RetirementYear, cell.ChildBirthYear))
}
