package calculation

import (
	"github.com/firecalc/fire-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Sustainability score scale. Scores below SustainableScore are the year the
// portfolio ran out; scores from SustainableScore up are 100 plus the years
// of final-year spending the terminal balance still covers, capped at MaxScore.
var (
	SustainableScore = decimal.NewFromInt(100)
	MaxScore         = decimal.NewFromInt(500)
)

// Score reduces a projection to its sustainability score.
//
// If any retired year ends with a negative balance, the score is the year of
// the first negative balance anywhere in the projection (which may precede
// retirement). Otherwise it is min(100 + final balance / final spending, 500).
// A final-year spending of zero or less cannot produce a ratio; the score is
// then the first negative year when there is one, or MaxScore.
// Depletion and the ratio use the precise Balance, not the display Portfolio.
func Score(projection []domain.YearlyRecord) decimal.Decimal {
	if len(projection) == 0 {
		return decimal.Zero
	}
	if year, ok := RunsOutYear(projection); ok {
		return decimal.NewFromInt(int64(year))
	}

	final := projection[len(projection)-1]
	if !final.Spending.IsPositive() {
		if year, ok := firstNegativeYear(projection); ok {
			return decimal.NewFromInt(int64(year))
		}
		return MaxScore
	}

	score := SustainableScore.Add(final.Balance.Div(final.Spending))
	if score.GreaterThan(MaxScore) {
		return MaxScore
	}
	return score
}

// RunsOutYear reports whether the portfolio is negative in any retired year
// and, if so, the first year whose balance is negative.
func RunsOutYear(projection []domain.YearlyRecord) (int, bool) {
	runsOut := false
	for i := range projection {
		if projection[i].IsRetired && projection[i].IsDepleted() {
			runsOut = true
			break
		}
	}
	if !runsOut {
		return 0, false
	}
	return firstNegativeYear(projection)
}

func firstNegativeYear(projection []domain.YearlyRecord) (int, bool) {
	for i := range projection {
		if projection[i].IsDepleted() {
			return projection[i].Year, true
		}
	}
	return 0, false
}
