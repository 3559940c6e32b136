package output

import (
	"strconv"
	"strings"

	"github.com/firecalc/fire-calculator/internal/domain"
	"github.com/firecalc/fire-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as whole US dollars with separators.
func FormatCurrency(amount decimal.Decimal) string { return money.FormatWhole(amount) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatScore formats a sustainability score.
func FormatScore(score decimal.Decimal) string { return money.FormatScore(score) }

// ChildLabel names a first-child column.
func ChildLabel(childBirthYear int) string {
	if childBirthYear < 0 {
		return "none"
	}
	return intToString(childBirthYear)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = intToString(v)
	}
	return strings.Join(parts, sep)
}

// scoreVerdict describes a score in words.
func scoreVerdict(summary *domain.ScenarioSummary) string {
	if summary.RunsOut {
		return "runs out in year " + intToString(summary.RunsOutYear)
	}
	if summary.Score.LessThan(decimalHundred) {
		return "negative before retirement"
	}
	return "sustainable"
}
