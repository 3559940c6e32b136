package domain

import "fmt"

// Configuration is the top-level input file.
type Configuration struct {
	Scenario ScenarioConfig `yaml:"scenario" json:"scenario"`
	Grid     GridSpec       `yaml:"grid" json:"grid"`
}

// GridSpec describes the ranges swept by the scenario explorer.
type GridSpec struct {
	RetirementYearFrom int  `yaml:"retirement_year_from" json:"retirement_year_from"`
	RetirementYearTo   int  `yaml:"retirement_year_to" json:"retirement_year_to"`
	ChildYearFrom      int  `yaml:"child_year_from" json:"child_year_from"`
	ChildYearTo        int  `yaml:"child_year_to" json:"child_year_to"`
	IncludeNoChild     bool `yaml:"include_no_child" json:"include_no_child"`
}

// RetirementYears expands the inclusive retirement range.
func (gs GridSpec) RetirementYears() []int {
	return inclusiveRange(gs.RetirementYearFrom, gs.RetirementYearTo)
}

// ChildBirthYears expands the inclusive child range, preceded by NoDependent
// when IncludeNoChild is set.
func (gs GridSpec) ChildBirthYears() []int {
	years := inclusiveRange(gs.ChildYearFrom, gs.ChildYearTo)
	if gs.IncludeNoChild {
		years = append([]int{NoDependent}, years...)
	}
	return years
}

// Size is the number of cells the grid expands to.
func (gs GridSpec) Size() int {
	return len(gs.RetirementYears()) * len(gs.ChildBirthYears())
}

// Validate checks that both ranges are non-empty.
func (gs GridSpec) Validate() error {
	if gs.RetirementYearTo < gs.RetirementYearFrom {
		return fmt.Errorf("retirement year range %d..%d is empty", gs.RetirementYearFrom, gs.RetirementYearTo)
	}
	if gs.ChildYearFrom < 0 {
		return fmt.Errorf("child year range must start at 0 or later, got %d", gs.ChildYearFrom)
	}
	if gs.ChildYearTo < gs.ChildYearFrom && !gs.IncludeNoChild {
		return fmt.Errorf("child year range %d..%d is empty", gs.ChildYearFrom, gs.ChildYearTo)
	}
	return nil
}

func inclusiveRange(from, to int) []int {
	if to < from {
		return nil
	}
	out := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		out = append(out, y)
	}
	return out
}
