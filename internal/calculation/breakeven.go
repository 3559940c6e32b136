package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/firecalc/fire-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrNeverSustainable is returned when even zero base spending runs out.
var ErrNeverSustainable = errors.New("scenario is not sustainable at any spending level")

const breakEvenMaxIterations = 60

// BreakEvenSpending finds the largest base spending, to the nearest whole
// unit, that keeps cfg sustainable (score of at least SustainableScore).
// Dependent costs still come on top of the base spending.
func (ce *CalculationEngine) BreakEvenSpending(ctx context.Context, cfg domain.ScenarioConfig) (*domain.SpendingBreakEven, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	cfg = cfg.Normalize()

	sustainable := func(spending decimal.Decimal) (bool, decimal.Decimal) {
		test := cfg
		test.BaseSpending = spending
		score := Score(ce.Project(test))
		return score.GreaterThanOrEqual(SustainableScore), score
	}

	if ok, _ := sustainable(decimal.Zero); !ok {
		return nil, ErrNeverSustainable
	}

	// Grow the upper bound until it fails
	one := decimal.NewFromInt(1)
	two := decimal.NewFromInt(2)
	minSpend := decimal.Zero
	maxSpend := decimal.Max(cfg.WorkingIncome, cfg.RetiredIncome, decimal.NewFromInt(1000))
	capped := false
	for i := 0; ; i++ {
		if ok, _ := sustainable(maxSpend); !ok {
			break
		}
		if i == breakEvenMaxIterations {
			capped = true
			break
		}
		minSpend = maxSpend
		maxSpend = maxSpend.Mul(two)
	}

	// Binary search for the boundary within one unit
	for i := 0; !capped && i < breakEvenMaxIterations && maxSpend.Sub(minSpend).GreaterThan(one); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		mid := minSpend.Add(maxSpend).Div(two).Floor()
		if ok, _ := sustainable(mid); ok {
			minSpend = mid
		} else {
			maxSpend = mid
		}
	}

	best := minSpend.Floor()
	if capped {
		best = maxSpend
	}
	_, score := sustainable(best)
	ce.Logger.Debugf("break-even: retirement year %d spending %s score %s", cfg.RetirementYear, best, score.StringFixed(2))
	return &domain.SpendingBreakEven{
		RetirementYear: cfg.RetirementYear,
		MaxSpending:    best,
		Score:          score,
		Sustainable:    true,
		Capped:         capped,
	}, nil
}

// BreakEvenByRetirementYear runs BreakEvenSpending for each retirement year.
// Years where no spending level works are reported with Sustainable false and
// the score reached at zero base spending.
func (ce *CalculationEngine) BreakEvenByRetirementYear(ctx context.Context, cfg domain.ScenarioConfig, years []int) ([]domain.SpendingBreakEven, error) {
	out := make([]domain.SpendingBreakEven, 0, len(years))
	for _, year := range years {
		res, err := ce.BreakEvenSpending(ctx, cfg.WithRetirementYear(year))
		switch {
		case errors.Is(err, ErrNeverSustainable):
			frugal := cfg.WithRetirementYear(year)
			frugal.BaseSpending = decimal.Zero
			out = append(out, domain.SpendingBreakEven{RetirementYear: year, Score: Score(ce.Project(frugal))})
		case err != nil:
			return nil, err
		default:
			out = append(out, *res)
		}
	}
	return out, nil
}
