package main

import (
	"fmt"

	"github.com/firecalc/fire-calculator/internal/calculation"
	"github.com/firecalc/fire-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Prints each schedule's tax one unit either side of every bracket ceiling.
// Handy for spotting the sub-dollar seams in the published state and city tables.
func main() {
	one := decimal.NewFromInt(1)
	schedules := []calculation.BracketSchedule{
		calculation.FederalSchedule2024,
		calculation.NewYorkSchedule2024,
		calculation.NewYorkCitySchedule2024,
	}
	for _, sched := range schedules {
		for _, status := range []domain.FilingStatus{domain.FilingSingle, domain.FilingMarried} {
			fmt.Printf("%s (%s)\n", sched.Name, status)
			brackets := sched.Brackets(status)
			for i, b := range brackets[:len(brackets)-1] {
				below := sched.Tax(b.Upper.Sub(one), status)
				at := sched.Tax(b.Upper, status)
				above := sched.Tax(b.Upper.Add(one), status)
				seam := brackets[i+1].Base.Sub(at)
				fmt.Printf("  %12s  %12s  %12s  %12s  seam %s\n",
					b.Upper.String(), below.StringFixed(2), at.StringFixed(2), above.StringFixed(2), seam.StringFixed(2))
			}
		}
	}
}
