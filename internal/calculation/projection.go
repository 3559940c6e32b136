package calculation

import (
	"github.com/firecalc/fire-calculator/internal/domain"
	"github.com/firecalc/fire-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// ProjectionYears is the fixed simulation horizon.
const ProjectionYears = 100

// BalanceScale is the number of decimal places the running balance keeps.
// Exact compounding would otherwise grow the digit count every year.
const BalanceScale = 10

// ContributionLimits are the annual tax-advantaged contributions made in
// every working year.
type ContributionLimits struct {
	Employer401k decimal.Decimal
	HSA          decimal.Decimal
	IRA          decimal.Decimal
}

// DefaultContributionLimits returns the 401(k), HSA and IRA caps.
func DefaultContributionLimits() ContributionLimits {
	return ContributionLimits{
		Employer401k: decimal.NewFromInt(23500),
		HSA:          decimal.NewFromInt(4300),
		IRA:          decimal.NewFromInt(7000),
	}
}

// PreTax is the combined pre-tax cap (401(k) plus HSA).
func (cl ContributionLimits) PreTax() decimal.Decimal {
	return cl.Employer401k.Add(cl.HSA)
}

// Project runs the year-by-year projection for cfg and returns one record
// per year, 1 through ProjectionYears.
func (ce *CalculationEngine) Project(cfg domain.ScenarioConfig) []domain.YearlyRecord {
	cfg = cfg.Normalize()
	projection := make([]domain.YearlyRecord, ProjectionYears)

	growth := money.Percent(cfg.ReturnRate)
	balance := cfg.InitialPortfolio

	for i := range projection {
		year := i + 1
		isRetired := year > cfg.RetirementYear

		income := cfg.WorkingIncome
		preTax := ce.Limits.PreTax()
		ira := ce.Limits.IRA
		if isRetired {
			income = cfg.RetiredIncome
			preTax = decimal.Zero
			ira = decimal.Zero
		}

		dependentCost := decimal.Zero
		ages := []int{}
		for _, birthYear := range cfg.DependentBirthYears {
			age := year - birthYear
			cost := DependentCost(age, cfg.DependentCostScale, cfg.PremiumCollege)
			if cost.IsPositive() {
				ages = append(ages, age)
			}
			dependentCost = dependentCost.Add(cost)
		}
		spending := cfg.BaseSpending.Add(dependentCost)

		// Pre-tax contributions reduce the income the tax tables see
		taxes := ce.TaxCalc.ComputeTaxes(income.Sub(preTax), cfg.FilingStatus, cfg.State, cfg.City)

		netSavings := income.Sub(preTax).Sub(taxes.Total).Sub(ira).Sub(spending).Round(BalanceScale)
		balance = balance.Mul(growth).Add(netSavings).Add(preTax).Add(ira).Round(BalanceScale)

		projection[i] = domain.YearlyRecord{
			Year:                year,
			Income:              income,
			PreTaxContributions: preTax,
			Spending:            spending,
			DependentCost:       dependentCost,
			IRAContribution:     ira,
			Taxes:               money.RoundWhole(taxes.Total),
			NetSavings:          money.RoundWhole(netSavings),
			Portfolio:           money.RoundWhole(balance),
			TaxDetail:           taxes,
			NetSavingsExact:     netSavings,
			Balance:             balance,
			IsRetired:           isRetired,
			DependentAges:       ages,
		}
	}

	if ce.Debug {
		last := projection[len(projection)-1]
		ce.Logger.Debugf("projection: retire after year %d, %d dependents, year %d portfolio %s",
			cfg.RetirementYear, len(cfg.DependentBirthYears), last.Year, last.Portfolio.StringFixed(0))
	}

	return projection
}
