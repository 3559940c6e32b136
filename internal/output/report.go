package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/firecalc/fire-calculator/internal/domain"
)

// Report is everything a formatter can render. Any combination of sections
// may be present; formatters skip the ones they do not handle.
type Report struct {
	Summary     *domain.ScenarioSummary    `json:"summary,omitempty" yaml:"summary,omitempty"`
	Grid        *domain.Grid               `json:"grid,omitempty" yaml:"grid,omitempty"`
	Analysis    *domain.GridAnalysis       `json:"analysis,omitempty" yaml:"analysis,omitempty"`
	Taxes       *domain.TaxQuote           `json:"taxes,omitempty" yaml:"taxes,omitempty"`
	BreakEven   []domain.SpendingBreakEven `json:"break_even,omitempty" yaml:"break_even,omitempty"`
	Assumptions []string                   `json:"assumptions,omitempty" yaml:"assumptions,omitempty"`
}

// IsEmpty reports whether the report has no renderable section.
func (r *Report) IsEmpty() bool {
	return r == nil || (r.Summary == nil && r.Grid == nil && r.Taxes == nil && len(r.BreakEven) == 0)
}

// GenerateReport renders report in the named format to w.
func GenerateReport(w io.Writer, report *Report, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(w, f, report)
}
