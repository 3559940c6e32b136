package output

import (
	"github.com/goccy/go-json"
)

// JSONFormatter serializes the report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	if report.IsEmpty() {
		return nil, ErrEmptyReport
	}
	return json.MarshalIndent(report, "", "  ")
}
