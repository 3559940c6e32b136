package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBreakdown holds the taxes owed for one year of income
type TaxBreakdown struct {
	Federal decimal.Decimal `json:"federal" yaml:"federal"`
	Payroll decimal.Decimal `json:"payroll" yaml:"payroll"`
	State   decimal.Decimal `json:"state" yaml:"state"`
	City    decimal.Decimal `json:"city" yaml:"city"`
	Total   decimal.Decimal `json:"total" yaml:"total"`
}

// TaxQuote is a standalone tax computation for one gross income.
type TaxQuote struct {
	Gross        decimal.Decimal `json:"gross" yaml:"gross"`
	FilingStatus FilingStatus    `json:"filing_status" yaml:"filing_status"`
	State        StateCode       `json:"state" yaml:"state"`
	City         CityCode        `json:"city" yaml:"city"`
	Taxes        TaxBreakdown    `json:"taxes" yaml:"taxes"`
}

// YearlyRecord represents the complete cash flow for a single simulated year
type YearlyRecord struct {
	Year int `json:"year" yaml:"year"`

	// Income and outflows
	Income              decimal.Decimal `json:"income" yaml:"income"`
	PreTaxContributions decimal.Decimal `json:"pre_tax_contributions" yaml:"pre_tax_contributions"`
	Spending            decimal.Decimal `json:"spending" yaml:"spending"`
	DependentCost       decimal.Decimal `json:"dependent_cost" yaml:"dependent_cost"`
	IRAContribution     decimal.Decimal `json:"ira_contribution" yaml:"ira_contribution"`

	// Display values, rounded to whole currency units
	Taxes      decimal.Decimal `json:"taxes" yaml:"taxes"`
	NetSavings decimal.Decimal `json:"net_savings" yaml:"net_savings"`
	Portfolio  decimal.Decimal `json:"portfolio" yaml:"portfolio"`

	// Unrounded values; Balance is what the next year compounds from
	TaxDetail       TaxBreakdown    `json:"tax_detail" yaml:"tax_detail"`
	NetSavingsExact decimal.Decimal `json:"net_savings_exact" yaml:"net_savings_exact"`
	Balance         decimal.Decimal `json:"balance" yaml:"balance"`

	IsRetired     bool  `json:"is_retired" yaml:"is_retired"`
	DependentAges []int `json:"dependent_ages" yaml:"dependent_ages"`
}

// Contributions returns the amount added to the portfolio outside net savings.
func (yr *YearlyRecord) Contributions() decimal.Decimal {
	return yr.PreTaxContributions.Add(yr.IRAContribution)
}

// IsDepleted reports whether the precise balance went below zero.
func (yr *YearlyRecord) IsDepleted() bool {
	return yr.Balance.IsNegative()
}

// ScenarioSummary provides the key metrics for one projected scenario
type ScenarioSummary struct {
	Config         ScenarioConfig  `json:"config" yaml:"config"`
	Projection     []YearlyRecord  `json:"projection" yaml:"projection"`
	Score          decimal.Decimal `json:"score" yaml:"score"`
	RunsOut        bool            `json:"runs_out" yaml:"runs_out"`
	RunsOutYear    int             `json:"runs_out_year,omitempty" yaml:"runs_out_year,omitempty"`
	AtRetirement   *YearlyRecord   `json:"at_retirement,omitempty" yaml:"at_retirement,omitempty"`
	FinalPortfolio decimal.Decimal `json:"final_portfolio" yaml:"final_portfolio"`
}

// SpendingBreakEven is the largest base spending a scenario can sustain.
type SpendingBreakEven struct {
	RetirementYear int             `json:"retirement_year" yaml:"retirement_year"`
	MaxSpending    decimal.Decimal `json:"max_spending" yaml:"max_spending"`
	Score          decimal.Decimal `json:"score" yaml:"score"`
	Sustainable    bool            `json:"sustainable" yaml:"sustainable"`
	// Capped is set when the search stopped at its upper bound.
	Capped bool `json:"capped,omitempty" yaml:"capped,omitempty"`
}

// GridCell is one scored (retirement year, first-child year) combination.
type GridCell struct {
	RetirementYear int             `json:"retirement_year" yaml:"retirement_year"`
	ChildBirthYear int             `json:"child_birth_year" yaml:"child_birth_year"`
	Metric         decimal.Decimal `json:"metric" yaml:"metric"`
}

// HasChild reports whether the cell models at least a first dependent.
func (gc GridCell) HasChild() bool {
	return gc.ChildBirthYear >= 0
}

// Grid is the result of one scenario sweep. Cells are row-major: retirement
// year outer, child year inner.
type Grid struct {
	RetirementYears []int      `json:"retirement_years" yaml:"retirement_years"`
	ChildBirthYears []int      `json:"child_birth_years" yaml:"child_birth_years"`
	Cells           []GridCell `json:"cells" yaml:"cells"`
}

// Cell returns the cell at the given range indexes.
func (g *Grid) Cell(retIndex, childIndex int) GridCell {
	return g.Cells[retIndex*len(g.ChildBirthYears)+childIndex]
}

// Lookup finds the cell for a retirement year and first-child year.
func (g *Grid) Lookup(retirementYear, childBirthYear int) (GridCell, bool) {
	for _, c := range g.Cells {
		if c.RetirementYear == retirementYear && c.ChildBirthYear == childBirthYear {
			return c, true
		}
	}
	return GridCell{}, false
}

// GridAnalysis summarizes a grid for reporting.
type GridAnalysis struct {
	Ranking []GridCell `json:"ranking" yaml:"ranking"`
	// EarliestSustainable maps a first-child year to the earliest retirement
	// year scoring at least 100; child years with none are omitted.
	EarliestSustainable map[int]int `json:"earliest_sustainable" yaml:"earliest_sustainable"`
}
