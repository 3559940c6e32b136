package output

import (
	"fmt"

	"github.com/firecalc/fire-calculator/internal/calculation"
	"github.com/firecalc/fire-calculator/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Returns are real (inflation-adjusted); all amounts are in today's dollars",
	"Tax tables: 2024 federal, New York State and New York City, held constant",
	"Working years contribute $27,800 pre-tax (401(k) $23,500 + HSA $4,300) and $7,000 to an IRA",
	"Social Security wage base $168,600; additional Medicare over $200,000 single / $250,000 married",
	"Dependents cost $20,000 to age 4, $15,000 school age, $50,000 in college (18-21)",
}

// GenerateAssumptions creates dynamic assumptions list from actual config values
func GenerateAssumptions(cfg domain.ScenarioConfig, limits calculation.ContributionLimits) []string {
	out := []string{
		fmt.Sprintf("Real return: %s%% annually; all amounts in today's dollars", cfg.ReturnRate.String()),
		fmt.Sprintf("Filing %s, state %s, city %s with 2024 tax tables held constant", cfg.FilingStatus, cfg.State, cfg.City),
		fmt.Sprintf("Working years contribute %s pre-tax (401(k) %s + HSA %s) and %s to an IRA",
			FormatCurrency(limits.PreTax()), FormatCurrency(limits.Employer401k), FormatCurrency(limits.HSA), FormatCurrency(limits.IRA)),
	}
	if len(cfg.DependentBirthYears) > 0 {
		tier := "standard"
		if cfg.PremiumCollege {
			tier = "premium"
		}
		out = append(out, fmt.Sprintf("Dependents born in years %s, cost scale %s, %s college tier",
			joinInts(cfg.DependentBirthYears, ", "), cfg.DependentCostScale.String(), tier))
	}
	return out
}

// assumptionsFor picks the report's assumptions, derives them from the
// scenario, or falls back to the defaults.
func assumptionsFor(report *Report) []string {
	if len(report.Assumptions) > 0 {
		return report.Assumptions
	}
	if report.Summary != nil {
		return GenerateAssumptions(report.Summary.Config, calculation.DefaultContributionLimits())
	}
	return DefaultAssumptions
}
