package output

import (
	"bytes"
	"encoding/csv"
)

// CSVGridExporter writes one row per grid cell in row-major order.
type CSVGridExporter struct{}

func (c CSVGridExporter) Name() string { return "grid-csv" }

func (c CSVGridExporter) Format(report *Report) ([]byte, error) {
	if report == nil || report.Grid == nil {
		return nil, ErrEmptyReport
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"RetirementYear", "FirstChildYear", "Score", "Sustainable"}); err != nil {
		return nil, err
	}
	for _, cell := range report.Grid.Cells {
		row := []string{
			intToString(cell.RetirementYear),
			ChildLabel(cell.ChildBirthYear),
			cell.Metric.StringFixed(4),
			boolToString(cell.Metric.GreaterThanOrEqual(decimalHundred)),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
