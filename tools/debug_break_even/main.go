package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/firecalc/fire-calculator/internal/calculation"
	"github.com/firecalc/fire-calculator/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <config-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	engine := calc.NewCalculationEngine()

	years := cfg.Grid.RetirementYears()
	results, err := engine.BreakEvenByRetirementYear(context.Background(), cfg.Scenario, years)
	if err != nil {
		panic(err)
	}

	// One row per retirement year, plus the trajectory at the break-even level
	fmt.Println("RetirementYear,MaxSpending,Score,Sustainable,PortfolioAtRetirement,FinalPortfolio")
	for _, r := range results {
		scenario := cfg.Scenario.WithRetirementYear(r.RetirementYear)
		scenario.BaseSpending = r.MaxSpending
		projection := engine.Project(scenario)
		atRetirement := "n/a"
		if r.RetirementYear >= 1 && r.RetirementYear <= len(projection) {
			atRetirement = projection[r.RetirementYear-1].Portfolio.String()
		}
		fmt.Printf("%d,%s,%s,%t,%s,%s\n",
			r.RetirementYear,
			r.MaxSpending.String(),
			r.Score.StringFixed(2),
			r.Sustainable,
			atRetirement,
			projection[len(projection)-1].Portfolio.String(),
		)
	}
}
