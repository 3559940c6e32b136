package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FilingStatus selects the deduction, bracket and surtax thresholds.
type FilingStatus string

const (
	FilingSingle  FilingStatus = "single"
	FilingMarried FilingStatus = "married"
)

// StateCode identifies the state income tax jurisdiction.
type StateCode string

const (
	StateNY   StateCode = "ny"
	StateNone StateCode = "none"
)

// CityCode identifies the city income tax jurisdiction.
type CityCode string

const (
	CityNYC  CityCode = "nyc"
	CityNone CityCode = "none"
)

// NoDependent is the canonical first-dependent year meaning "no child".
// Any negative first-dependent year is treated the same way.
const NoDependent = -1

// ScenarioConfig holds every input of a single projection run. It is a plain
// value: callers copy it, nothing mutates it.
type ScenarioConfig struct {
	WorkingIncome    decimal.Decimal `yaml:"working_income" json:"working_income"`
	RetiredIncome    decimal.Decimal `yaml:"retired_income" json:"retired_income"`
	BaseSpending     decimal.Decimal `yaml:"base_spending" json:"base_spending"`
	InitialPortfolio decimal.Decimal `yaml:"initial_portfolio" json:"initial_portfolio"`

	// RetirementYear is the last working year; year indexes start at 1.
	RetirementYear int `yaml:"retirement_year" json:"retirement_year"`

	// DependentBirthYears are year indexes; negative means born before year 1.
	DependentBirthYears []int `yaml:"dependent_birth_years" json:"dependent_birth_years"`
	// FirstDependentYear, DependentCount and DependentSpacing derive the birth
	// years when DependentBirthYears is not given explicitly.
	FirstDependentYear *int           `yaml:"first_dependent_year,omitempty" json:"first_dependent_year,omitempty"`
	DependentCount     int            `yaml:"dependent_count" json:"dependent_count"`
	DependentSpacing   int            `yaml:"dependent_spacing" json:"dependent_spacing"`
	DependentCostScale decimal.Decimal `yaml:"dependent_cost_scale" json:"dependent_cost_scale"`
	PremiumCollege     bool           `yaml:"premium_college" json:"premium_college"`

	FilingStatus FilingStatus `yaml:"filing_status" json:"filing_status"`
	State        StateCode    `yaml:"state" json:"state"`
	City         CityCode     `yaml:"city" json:"city"`

	// ReturnRate is the annual real return in percent (7 means 7%).
	ReturnRate decimal.Decimal `yaml:"return_rate" json:"return_rate"`
}

// DependentBirthYears spaces count births spacing years apart starting at
// first. A negative first year or a zero count yields no dependents.
func DependentBirthYears(first, count, spacing int) []int {
	if first < 0 || count <= 0 {
		return nil
	}
	years := make([]int, count)
	for i := range years {
		years[i] = first + i*spacing
	}
	return years
}

// WithRetirementYear returns a copy of the config retiring after year.
func (sc ScenarioConfig) WithRetirementYear(year int) ScenarioConfig {
	sc.RetirementYear = year
	return sc
}

// WithFirstDependent returns a copy whose dependent birth years are derived
// from first using the configured count and spacing.
func (sc ScenarioConfig) WithFirstDependent(first int) ScenarioConfig {
	sc.DependentBirthYears = DependentBirthYears(first, sc.DependentCount, sc.DependentSpacing)
	f := first
	sc.FirstDependentYear = &f
	return sc
}

// Normalize resolves the first-dependent shorthand into explicit birth years.
// The birth-year slice is copied so the result shares nothing with sc.
func (sc ScenarioConfig) Normalize() ScenarioConfig {
	if len(sc.DependentBirthYears) == 0 && sc.FirstDependentYear != nil {
		return sc.WithFirstDependent(*sc.FirstDependentYear)
	}
	sc.DependentBirthYears = append([]int(nil), sc.DependentBirthYears...)
	return sc
}

// Validate checks enum fields and non-negative counts. Numeric ranges such as
// negative income are left alone; they project to meaningful (if bleak) results.
func (sc ScenarioConfig) Validate() error {
	switch sc.FilingStatus {
	case FilingSingle, FilingMarried:
	default:
		return fmt.Errorf("filing status must be 'single' or 'married', got %q", sc.FilingStatus)
	}
	switch sc.State {
	case StateNY, StateNone:
	default:
		return fmt.Errorf("state must be 'ny' or 'none', got %q", sc.State)
	}
	switch sc.City {
	case CityNYC, CityNone:
	default:
		return fmt.Errorf("city must be 'nyc' or 'none', got %q", sc.City)
	}
	if sc.DependentCostScale.IsNegative() {
		return fmt.Errorf("dependent cost scale cannot be negative")
	}
	if sc.DependentCount < 0 {
		return fmt.Errorf("dependent count cannot be negative")
	}
	if sc.DependentSpacing < 0 {
		return fmt.Errorf("dependent spacing cannot be negative")
	}
	return nil
}

// DefaultScenarioConfig returns the starting scenario: a single New York City
// earner making 200,000, spending 65,000, retiring after year 15 at a 7% real
// return, with no dependents.
func DefaultScenarioConfig() ScenarioConfig {
	return ScenarioConfig{
		WorkingIncome:      decimal.NewFromInt(200000),
		RetiredIncome:      decimal.Zero,
		BaseSpending:       decimal.NewFromInt(65000),
		InitialPortfolio:   decimal.Zero,
		RetirementYear:     15,
		DependentCount:     1,
		DependentSpacing:   2,
		DependentCostScale: decimal.NewFromInt(1),
		FilingStatus:       FilingSingle,
		State:              StateNY,
		City:               CityNYC,
		ReturnRate:         decimal.NewFromInt(7),
	}
}
