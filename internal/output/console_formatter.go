package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/firecalc/fire-calculator/internal/domain"
)

// ConsoleFormatter renders a plain-text report for terminals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	if report.IsEmpty() {
		return nil, ErrEmptyReport
	}
	var buf bytes.Buffer
	if report.Taxes != nil {
		writeTaxQuote(&buf, report.Taxes)
	}
	if report.Summary != nil {
		writeSummary(&buf, report.Summary, assumptionsFor(report))
	}
	if report.Grid != nil {
		writeGrid(&buf, report.Grid, report.Analysis)
	}
	if len(report.BreakEven) > 0 {
		writeBreakEven(&buf, report.BreakEven)
	}
	return buf.Bytes(), nil
}

func writeTaxQuote(buf *bytes.Buffer, q *domain.TaxQuote) {
	fmt.Fprintln(buf, "TAX BREAKDOWN")
	fmt.Fprintln(buf, "================================")
	fmt.Fprintf(buf, "Gross income:  %s (%s, state %s, city %s)\n", FormatCurrency(q.Gross), q.FilingStatus, q.State, q.City)
	fmt.Fprintf(buf, "Federal:       %s\n", q.Taxes.Federal.StringFixed(2))
	fmt.Fprintf(buf, "Payroll:       %s\n", q.Taxes.Payroll.StringFixed(2))
	fmt.Fprintf(buf, "State:         %s\n", q.Taxes.State.StringFixed(2))
	fmt.Fprintf(buf, "City:          %s\n", q.Taxes.City.StringFixed(2))
	fmt.Fprintf(buf, "Total:         %s\n", q.Taxes.Total.StringFixed(2))
	if q.Gross.IsPositive() {
		fmt.Fprintf(buf, "Effective rate: %s\n", FormatPercentage(q.Taxes.Total.Div(q.Gross).Mul(decimalHundred)))
	}
	fmt.Fprintln(buf)
}

func writeSummary(buf *bytes.Buffer, s *domain.ScenarioSummary, assumptions []string) {
	fmt.Fprintln(buf, "FIRE PROJECTION SUMMARY")
	fmt.Fprintln(buf, "================================")
	fmt.Fprintf(buf, "Retire after year:    %d\n", s.Config.RetirementYear)
	fmt.Fprintf(buf, "Sustainability score: %s (%s)\n", FormatScore(s.Score), scoreVerdict(s))
	if s.AtRetirement != nil {
		fmt.Fprintf(buf, "At retirement:        portfolio %s, spending %s\n",
			FormatCurrency(s.AtRetirement.Portfolio), FormatCurrency(s.AtRetirement.Spending))
	}
	fmt.Fprintf(buf, "Final portfolio:      %s\n", FormatCurrency(s.FinalPortfolio))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptions {
		fmt.Fprintf(buf, "• %s\n", a)
	}
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "%-5s %12s %10s %12s %12s %14s  %-7s %s\n",
		"Year", "Income", "Taxes", "Spending", "Net Savings", "Portfolio", "Status", "Dependents")
	fmt.Fprintln(buf, strings.Repeat("-", 92))
	for _, r := range s.Projection {
		status := "working"
		if r.IsRetired {
			status = "retired"
		}
		fmt.Fprintf(buf, "%-5d %12s %10s %12s %12s %14s  %-7s %s\n",
			r.Year,
			FormatCurrency(r.Income),
			FormatCurrency(r.Taxes),
			FormatCurrency(r.Spending),
			FormatCurrency(r.NetSavings),
			FormatCurrency(r.Portfolio),
			status,
			joinInts(r.DependentAges, ","),
		)
	}
	fmt.Fprintln(buf)
}

func writeGrid(buf *bytes.Buffer, g *domain.Grid, analysis *domain.GridAnalysis) {
	fmt.Fprintln(buf, "SUSTAINABILITY GRID (rows: retire after year, columns: first child year)")
	fmt.Fprintln(buf, "================================")
	fmt.Fprintf(buf, "%-6s", "Ret")
	for _, child := range g.ChildBirthYears {
		fmt.Fprintf(buf, " %6s", ChildLabel(child))
	}
	fmt.Fprintln(buf)
	for ri, ret := range g.RetirementYears {
		fmt.Fprintf(buf, "%-6d", ret)
		for ci := range g.ChildBirthYears {
			fmt.Fprintf(buf, " %6s", FormatScore(g.Cell(ri, ci).Metric))
		}
		fmt.Fprintln(buf)
	}

	rec := AnalyzeGrid(analysis)
	if !rec.Found {
		return
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "Best: retire after year %d, first child %s (score %s)\n",
		rec.RetirementYear, ChildLabel(rec.ChildBirthYear), FormatScore(rec.Score))
	if len(rec.Earliest) == 0 {
		fmt.Fprintln(buf, "No combination reaches a sustainable score.")
		return
	}
	fmt.Fprintln(buf, "Earliest sustainable retirement by first child year:")
	for _, e := range rec.Earliest {
		fmt.Fprintf(buf, "  %-6s year %d\n", ChildLabel(e.ChildBirthYear), e.RetirementYear)
	}
}

func writeBreakEven(buf *bytes.Buffer, results []domain.SpendingBreakEven) {
	fmt.Fprintln(buf, "MAXIMUM SUSTAINABLE BASE SPENDING")
	fmt.Fprintln(buf, "================================")
	fmt.Fprintf(buf, "%-8s %14s %7s\n", "Retire", "Spending", "Score")
	for _, r := range results {
		spending := FormatCurrency(r.MaxSpending)
		switch {
		case !r.Sustainable:
			spending = "never"
		case r.Capped:
			spending = ">" + spending
		}
		fmt.Fprintf(buf, "%-8d %14s %7s\n", r.RetirementYear, spending, FormatScore(r.Score))
	}
	fmt.Fprintln(buf)
}
