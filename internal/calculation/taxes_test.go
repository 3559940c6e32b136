package calculation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/firecalc/fire-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want, got decimal.Decimal, label ...string) {
	t.Helper()
	assert.True(t, want.Equal(got), "%s: want %s, got %s", strings.Join(label, " "), want.String(), got.String())
}

// TestComputeTaxesWorkedExamples checks each component against hand calculations
func TestComputeTaxesWorkedExamples(t *testing.T) {
	tests := []struct {
		name    string
		gross   string
		status  domain.FilingStatus
		state   domain.StateCode
		city    domain.CityCode
		federal string
		payroll string
		stateT  string
		cityT   string
		total   string
	}{
		{
			// taxable 85,400: 5,426 + 38,250*0.22; NY 4,271 + 4,750*0.06; NYC 1,813 + 50,000*0.03876
			name: "100k single NY NYC", gross: "100000",
			status: domain.FilingSingle, state: domain.StateNY, city: domain.CityNYC,
			federal: "13841", payroll: "7650", stateT: "4556", cityT: "3751", total: "29798",
		},
		{
			// taxable 270,800: 34,337 + 69,750*0.24; SS capped; 0.9% on 50,000 over 250,000
			name: "300k married NY NYC", gross: "300000",
			status: domain.FilingMarried, state: domain.StateNY, city: domain.CityNYC,
			federal: "51077", payroll: "15253.2", stateT: "15108", cityT: "11402.6", total: "92840.8",
		},
		{
			// taxable 35,400: 1,160 + 23,800*0.12
			name: "50k single no state or city", gross: "50000",
			status: domain.FilingSingle, state: domain.StateNone, city: domain.CityNone,
			federal: "4016", payroll: "3825", stateT: "0", cityT: "0", total: "7841",
		},
		{
			// taxable 235,400: 39,110.5 + 43,450*0.32; 0.9% on 50,000 over 200,000
			name: "250k single additional medicare", gross: "250000",
			status: domain.FilingSingle, state: domain.StateNone, city: domain.CityNone,
			federal: "53014.5", payroll: "14528.2", stateT: "0", cityT: "0", total: "67542.7",
		},
		{
			// taxable exactly at the first bracket ceiling
			name: "bracket ceiling stays in bracket", gross: "26200",
			status: domain.FilingSingle, state: domain.StateNone, city: domain.CityNone,
			federal: "1160", payroll: "2004.3", stateT: "0", cityT: "0", total: "3164.3",
		},
		{
			name: "below standard deduction owes only payroll and city", gross: "14000",
			status: domain.FilingSingle, state: domain.StateNY, city: domain.CityNYC,
			// NYC: 369 + 2,000*0.03762
			federal: "0", payroll: "1071", stateT: "0", cityT: "444.24", total: "1515.24",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTaxes(dec(tt.gross), tt.status, tt.state, tt.city)
			assertDecimal(t, dec(tt.federal), got.Federal, "federal")
			assertDecimal(t, dec(tt.payroll), got.Payroll, "payroll")
			assertDecimal(t, dec(tt.stateT), got.State, "state")
			assertDecimal(t, dec(tt.cityT), got.City, "city")
			assertDecimal(t, dec(tt.total), got.Total, "total")
		})
	}
}

func TestComputeTaxesZeroAndNegativeIncome(t *testing.T) {
	for _, gross := range []string{"0", "-5000"} {
		for _, status := range []domain.FilingStatus{domain.FilingSingle, domain.FilingMarried} {
			got := ComputeTaxes(dec(gross), status, domain.StateNY, domain.CityNYC)
			assert.True(t, got.Federal.IsZero(), "federal for %s %s", gross, status)
			assert.True(t, got.Payroll.IsZero(), "payroll for %s %s", gross, status)
			assert.True(t, got.State.IsZero(), "state for %s %s", gross, status)
			assert.True(t, got.City.IsZero(), "city for %s %s", gross, status)
			assert.True(t, got.Total.IsZero(), "total for %s %s", gross, status)
		}
	}
}

// TestComputeTaxesMonotonic samples every $2,500 up to $2.5M. The NY and NYC
// tables have sub-dollar seams a few dollars wide at some bracket edges; the
// sample points never land inside one.
func TestComputeTaxesMonotonic(t *testing.T) {
	step := decimal.NewFromInt(2500)
	limit := decimal.NewFromInt(2500000)
	for _, status := range []domain.FilingStatus{domain.FilingSingle, domain.FilingMarried} {
		prev := ComputeTaxes(decimal.Zero, status, domain.StateNY, domain.CityNYC)
		for income := step; income.LessThanOrEqual(limit); income = income.Add(step) {
			cur := ComputeTaxes(income, status, domain.StateNY, domain.CityNYC)
			assert.True(t, cur.Federal.GreaterThanOrEqual(prev.Federal), "federal decreased at %s (%s)", income, status)
			assert.True(t, cur.Payroll.GreaterThanOrEqual(prev.Payroll), "payroll decreased at %s (%s)", income, status)
			assert.True(t, cur.State.GreaterThanOrEqual(prev.State), "state decreased at %s (%s)", income, status)
			assert.True(t, cur.City.GreaterThanOrEqual(prev.City), "city decreased at %s (%s)", income, status)
			assert.True(t, cur.Total.GreaterThanOrEqual(prev.Total), "total decreased at %s (%s)", income, status)
			prev = cur
		}
	}
}

// TestBracketScheduleContinuity checks each federal base equals the tax at the previous ceiling
func TestBracketScheduleContinuity(t *testing.T) {
	for _, status := range []domain.FilingStatus{domain.FilingSingle, domain.FilingMarried} {
		brackets := FederalSchedule2024.Brackets(status)
		assert.Len(t, brackets, 7)
		for i := 1; i < len(brackets); i++ {
			atCeiling := FederalSchedule2024.Tax(brackets[i-1].Upper, status)
			assertDecimal(t, brackets[i].Base, atCeiling, "federal", string(status), fmt.Sprint(i))
		}
	}
	assert.Len(t, NewYorkSchedule2024.Single, 7)
	assert.Len(t, NewYorkSchedule2024.Married, 7)
	assert.Len(t, NewYorkCitySchedule2024.Single, 4)
	assert.Len(t, NewYorkCitySchedule2024.Married, 4)
}

func TestCityTaxUsesGrossIncome(t *testing.T) {
	// Same gross, different filing status: the city schedule never sees the deduction
	got := ComputeTaxes(dec("10000"), domain.FilingSingle, domain.StateNone, domain.CityNYC)
	assertDecimal(t, dec("307.8"), got.City)
	assert.True(t, got.Federal.IsZero())
}

func TestPayrollTaxCalculator(t *testing.T) {
	pc := NewPayrollTaxCalculator2024()

	tests := []struct {
		name   string
		wages  string
		status domain.FilingStatus
		want   string
	}{
		{"below wage base", "100000", domain.FilingSingle, "7650"},
		// 168,600*0.062 + 200,000*0.0145
		{"at single surtax threshold", "200000", domain.FilingSingle, "13353.2"},
		// married threshold is 250,000 so no surtax at 240,000
		{"married below threshold", "240000", domain.FilingMarried, "13933.2"},
		// 10,453.2 + 3,480 + 40,000*0.009
		{"single above threshold", "240000", domain.FilingSingle, "14293.2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, dec(tt.want), pc.CalculatePayroll(dec(tt.wages), tt.status))
		})
	}
}

func TestTaxCalculatorUnknownJurisdictionOwesNothing(t *testing.T) {
	tc := NewTaxCalculator2024()
	got := tc.ComputeTaxes(dec("100000"), domain.FilingSingle, domain.StateCode("ca"), domain.CityCode("sf"))
	assert.True(t, got.State.IsZero())
	assert.True(t, got.City.IsZero())
	assertDecimal(t, dec("21491"), got.Total)
}
