package output

import (
	"sort"

	"github.com/firecalc/fire-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the best grid cell and how early retirement
// can happen without and with children.
type Recommendation struct {
	Found          bool
	RetirementYear int
	ChildBirthYear int
	Score          decimal.Decimal
	Earliest       []EarliestRetirement
}

// EarliestRetirement is one entry of the earliest-sustainable table.
type EarliestRetirement struct {
	ChildBirthYear int
	RetirementYear int
}

// AnalyzeGrid picks the top-ranked cell and orders the earliest sustainable
// retirements by first-child year.
func AnalyzeGrid(analysis *domain.GridAnalysis) Recommendation {
	if analysis == nil || len(analysis.Ranking) == 0 {
		return Recommendation{}
	}
	best := analysis.Ranking[0]
	rec := Recommendation{
		Found:          true,
		RetirementYear: best.RetirementYear,
		ChildBirthYear: best.ChildBirthYear,
		Score:          best.Metric,
	}
	for child, ret := range analysis.EarliestSustainable {
		rec.Earliest = append(rec.Earliest, EarliestRetirement{ChildBirthYear: child, RetirementYear: ret})
	}
	sort.Slice(rec.Earliest, func(i, j int) bool { return rec.Earliest[i].ChildBirthYear < rec.Earliest[j].ChildBirthYear })
	return rec
}
