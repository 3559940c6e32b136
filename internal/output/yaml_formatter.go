package output

import "gopkg.in/yaml.v3"

// YAMLFormatter serializes the report as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *Report) ([]byte, error) {
	if report.IsEmpty() {
		return nil, ErrEmptyReport
	}
	return yaml.Marshal(report)
}
