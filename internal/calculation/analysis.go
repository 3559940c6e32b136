package calculation

import (
	"sort"

	"github.com/firecalc/fire-calculator/internal/domain"
)

// RankCells orders cells best first: higher score, then earlier retirement,
// then earlier first child (no child sorts before any child year).
func RankCells(cells []domain.GridCell) []domain.GridCell {
	ranked := append([]domain.GridCell(nil), cells...)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if !a.Metric.Equal(b.Metric) {
			return a.Metric.GreaterThan(b.Metric)
		}
		if a.RetirementYear != b.RetirementYear {
			return a.RetirementYear < b.RetirementYear
		}
		return a.ChildBirthYear < b.ChildBirthYear
	})
	return ranked
}

// EarliestSustainable maps each first-child year to the earliest retirement
// year whose score reaches SustainableScore.
func EarliestSustainable(grid *domain.Grid) map[int]int {
	out := make(map[int]int)
	for _, c := range grid.Cells {
		if c.Metric.LessThan(SustainableScore) {
			continue
		}
		if best, ok := out[c.ChildBirthYear]; !ok || c.RetirementYear < best {
			out[c.ChildBirthYear] = c.RetirementYear
		}
	}
	return out
}

// AnalyzeGrid ranks the cells and finds the earliest sustainable retirements.
func AnalyzeGrid(grid *domain.Grid) domain.GridAnalysis {
	return domain.GridAnalysis{
		Ranking:             RankCells(grid.Cells),
		EarliestSustainable: EarliestSustainable(grid),
	}
}
