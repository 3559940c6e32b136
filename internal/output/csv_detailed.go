package output

import (
	"bytes"
	"encoding/csv"
)

// CSVDetailedExporter writes the year-by-year projection of a scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "csv" }

func (c CSVDetailedExporter) Format(report *Report) ([]byte, error) {
	if report == nil || report.Summary == nil {
		return nil, ErrEmptyReport
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Income", "PreTaxContributions", "IRAContribution", "Spending", "DependentCost",
		"Taxes", "NetSavings", "Portfolio", "Balance", "IsRetired", "DependentAges"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, yr := range report.Summary.Projection {
		row := []string{
			intToString(yr.Year),
			yr.Income.StringFixed(2),
			yr.PreTaxContributions.StringFixed(2),
			yr.IRAContribution.StringFixed(2),
			yr.Spending.StringFixed(2),
			yr.DependentCost.StringFixed(2),
			yr.Taxes.StringFixed(0),
			yr.NetSavings.StringFixed(0),
			yr.Portfolio.StringFixed(0),
			yr.Balance.StringFixed(2),
			boolToString(yr.IsRetired),
			joinInts(yr.DependentAges, ";"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
