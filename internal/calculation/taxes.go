package calculation

import (
	"github.com/firecalc/fire-calculator/internal/domain"
	"github.com/firecalc/fire-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal Tax Brackets: 2024 brackets for every projection year
//    - No inflation indexing (all figures are real dollars)
//    - Standard deduction: $14,600 single / $29,200 married
//
// 2. Payroll: Social Security 6.2% up to the $168,600 wage base, Medicare
//    1.45% uncapped, additional Medicare 0.9% above $200,000 single /
//    $250,000 married
//
// 3. New York State: marginal brackets on federal taxable income
//
// 4. New York City: marginal brackets on gross income (no deduction)

// TaxBracket is one tier of a marginal schedule. Base is the tax owed on
// income up to the bracket floor, which is the previous bracket's Upper.
type TaxBracket struct {
	Upper decimal.Decimal
	Base  decimal.Decimal
	Rate  decimal.Decimal
}

// BracketSchedule holds one jurisdiction's brackets for both filing statuses.
// The last bracket of each list is open-ended.
type BracketSchedule struct {
	Name    string
	Single  []TaxBracket
	Married []TaxBracket
}

// Brackets returns the tiers for the filing status.
func (bs BracketSchedule) Brackets(status domain.FilingStatus) []TaxBracket {
	if status == domain.FilingMarried {
		return bs.Married
	}
	return bs.Single
}

// Tax applies the schedule to amount. Amounts at or below zero owe nothing
// and an amount equal to a bracket's Upper stays in that bracket.
func (bs BracketSchedule) Tax(amount decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	if !amount.IsPositive() {
		return decimal.Zero
	}
	brackets := bs.Brackets(status)
	floor := decimal.Zero
	for i, b := range brackets {
		if i == len(brackets)-1 || amount.LessThanOrEqual(b.Upper) {
			return b.Base.Add(amount.Sub(floor).Mul(b.Rate))
		}
		floor = b.Upper
	}
	return decimal.Zero
}

func bracket(upper, base, rate string) TaxBracket {
	return TaxBracket{
		Upper: decimal.RequireFromString(upper),
		Base:  decimal.RequireFromString(base),
		Rate:  decimal.RequireFromString(rate),
	}
}

// openBracket is the final tier; its upper bound is never consulted.
func openBracket(base, rate string) TaxBracket {
	return TaxBracket{
		Base: decimal.RequireFromString(base),
		Rate: decimal.RequireFromString(rate),
	}
}

// FederalSchedule2024 is the federal ordinary income schedule.
var FederalSchedule2024 = BracketSchedule{
	Name: "federal",
	Single: []TaxBracket{
		bracket("11600", "0", "0.10"),
		bracket("47150", "1160", "0.12"),
		bracket("100525", "5426", "0.22"),
		bracket("191950", "17168.5", "0.24"),
		bracket("243725", "39110.5", "0.32"),
		bracket("609350", "55678.5", "0.35"),
		openBracket("183647.25", "0.37"),
	},
	Married: []TaxBracket{
		bracket("23200", "0", "0.10"),
		bracket("94300", "2320", "0.12"),
		bracket("201050", "10852", "0.22"),
		bracket("383900", "34337", "0.24"),
		bracket("487450", "78221", "0.32"),
		bracket("731200", "111357", "0.35"),
		openBracket("196669.5", "0.37"),
	},
}

// NewYorkSchedule2024 is the New York State schedule, applied to taxable income.
var NewYorkSchedule2024 = BracketSchedule{
	Name: "ny",
	Single: []TaxBracket{
		bracket("8500", "0", "0.04"),
		bracket("11700", "340", "0.045"),
		bracket("13900", "484", "0.0525"),
		bracket("80650", "600", "0.055"),
		bracket("215400", "4271", "0.06"),
		bracket("1077550", "12356", "0.0685"),
		openBracket("71415", "0.0965"),
	},
	Married: []TaxBracket{
		bracket("17150", "0", "0.04"),
		bracket("23600", "686", "0.045"),
		bracket("27900", "976", "0.0525"),
		bracket("161550", "1202", "0.055"),
		bracket("323200", "8553", "0.06"),
		bracket("2155350", "18252", "0.0685"),
		openBracket("143781", "0.0965"),
	},
}

// NewYorkCitySchedule2024 is the NYC resident schedule, applied to gross income.
var NewYorkCitySchedule2024 = BracketSchedule{
	Name: "nyc",
	Single: []TaxBracket{
		bracket("12000", "0", "0.03078"),
		bracket("25000", "369", "0.03762"),
		bracket("50000", "858", "0.03819"),
		openBracket("1813", "0.03876"),
	},
	Married: []TaxBracket{
		bracket("21600", "0", "0.03078"),
		bracket("45000", "665", "0.03762"),
		bracket("90000", "1545", "0.03819"),
		openBracket("3263", "0.03876"),
	},
}

// PayrollTaxCalculator handles Social Security and Medicare taxes
type PayrollTaxCalculator struct {
	SSWageBase                 decimal.Decimal
	SSRate                     decimal.Decimal
	MedicareRate               decimal.Decimal
	AdditionalRate             decimal.Decimal
	AdditionalThresholdSingle  decimal.Decimal
	AdditionalThresholdMarried decimal.Decimal
}

// NewPayrollTaxCalculator2024 creates a payroll calculator with 2024 values
func NewPayrollTaxCalculator2024() *PayrollTaxCalculator {
	return &PayrollTaxCalculator{
		SSWageBase:                 decimal.NewFromInt(168600),
		SSRate:                     decimal.RequireFromString("0.062"),
		MedicareRate:               decimal.RequireFromString("0.0145"),
		AdditionalRate:             decimal.RequireFromString("0.009"),
		AdditionalThresholdSingle:  decimal.NewFromInt(200000),
		AdditionalThresholdMarried: decimal.NewFromInt(250000),
	}
}

// CalculatePayroll calculates payroll tax on gross wages
func (pc *PayrollTaxCalculator) CalculatePayroll(wages decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	// Social Security tax (capped at the wage base)
	ssTax := money.Min(wages, pc.SSWageBase).Mul(pc.SSRate)

	// Medicare tax (no cap)
	medicareTax := wages.Mul(pc.MedicareRate)

	// Additional Medicare tax on the excess only
	threshold := pc.AdditionalThresholdSingle
	if status == domain.FilingMarried {
		threshold = pc.AdditionalThresholdMarried
	}
	var additionalMedicare decimal.Decimal
	if wages.GreaterThan(threshold) {
		additionalMedicare = wages.Sub(threshold).Mul(pc.AdditionalRate)
	}

	return ssTax.Add(medicareTax).Add(additionalMedicare)
}

// TaxCalculator combines the federal, payroll, state and city calculations
type TaxCalculator struct {
	StandardDeductionSingle  decimal.Decimal
	StandardDeductionMarried decimal.Decimal
	Federal                  BracketSchedule
	Payroll                  *PayrollTaxCalculator
	States                   map[domain.StateCode]BracketSchedule
	Cities                   map[domain.CityCode]BracketSchedule
}

// NewTaxCalculator2024 creates a tax calculator with the 2024 policy tables
func NewTaxCalculator2024() *TaxCalculator {
	return &TaxCalculator{
		StandardDeductionSingle:  decimal.NewFromInt(14600),
		StandardDeductionMarried: decimal.NewFromInt(29200),
		Federal:                  FederalSchedule2024,
		Payroll:                  NewPayrollTaxCalculator2024(),
		States:                   map[domain.StateCode]BracketSchedule{domain.StateNY: NewYorkSchedule2024},
		Cities:                   map[domain.CityCode]BracketSchedule{domain.CityNYC: NewYorkCitySchedule2024},
	}
}

var defaultTaxCalculator = NewTaxCalculator2024()

// ComputeTaxes calculates all taxes on gross income using the 2024 tables.
func ComputeTaxes(gross decimal.Decimal, status domain.FilingStatus, state domain.StateCode, city domain.CityCode) domain.TaxBreakdown {
	return defaultTaxCalculator.ComputeTaxes(gross, status, state, city)
}

// StandardDeduction returns the deduction for the filing status.
func (tc *TaxCalculator) StandardDeduction(status domain.FilingStatus) decimal.Decimal {
	if status == domain.FilingMarried {
		return tc.StandardDeductionMarried
	}
	return tc.StandardDeductionSingle
}

// TaxableIncome is gross income less the standard deduction, floored at zero.
func (tc *TaxCalculator) TaxableIncome(gross decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	return money.NonNegative(gross.Sub(tc.StandardDeduction(status)))
}

// ComputeTaxes calculates all applicable taxes. Negative income is treated as zero.
// Jurisdiction codes without a schedule (including "none") owe nothing.
func (tc *TaxCalculator) ComputeTaxes(gross decimal.Decimal, status domain.FilingStatus, state domain.StateCode, city domain.CityCode) domain.TaxBreakdown {
	gross = money.NonNegative(gross)
	taxable := tc.TaxableIncome(gross, status)

	federalTax := tc.Federal.Tax(taxable, status)
	payrollTax := tc.Payroll.CalculatePayroll(gross, status)

	stateTax := decimal.Zero
	if schedule, ok := tc.States[state]; ok {
		stateTax = schedule.Tax(taxable, status)
	}

	// City tax is levied on gross income, not taxable income
	cityTax := decimal.Zero
	if schedule, ok := tc.Cities[city]; ok {
		cityTax = schedule.Tax(gross, status)
	}

	return domain.TaxBreakdown{
		Federal: federalTax,
		Payroll: payrollTax,
		State:   stateTax,
		City:    cityTax,
		Total:   federalTax.Add(payrollTax).Add(stateTax).Add(cityTax),
	}
}
