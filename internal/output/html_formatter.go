package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/firecalc/fire-calculator/internal/domain"
	"github.com/goccy/go-json"
)

// HTMLFormatter produces a self-contained HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"score": FormatScore,
	"child": ChildLabel,
	"cell":  func(g *domain.Grid, ri, ci int) domain.GridCell { return g.Cell(ri, ci) },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	if report.IsEmpty() {
		return nil, ErrEmptyReport
	}
	var buf bytes.Buffer
	data := struct {
		*Report
		Recommendation Recommendation
		Assumptions    []string
		Verdict        string
	}{Report: report, Recommendation: AnalyzeGrid(report.Analysis), Assumptions: assumptionsFor(report)}
	if report.Summary != nil {
		data.Verdict = scoreVerdict(report.Summary)
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
