package money

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	half    = decimal.NewFromFloat(0.5)
	hundred = decimal.NewFromInt(100)
	printer = message.NewPrinter(language.English)
)

// RoundWhole rounds to whole currency units with halves going toward positive
// infinity, so -2.5 becomes -2 and 2.5 becomes 3.
func RoundWhole(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// Percent converts a percentage (7 for 7%) into a growth multiplier (1.07).
func Percent(rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(rate.Div(hundred))
}

// Min returns the smaller amount
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger amount
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// NonNegative floors an amount at zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	return Max(d, decimal.Zero)
}

// FormatWhole renders a rounded amount with thousands separators, e.g. "$1,234,567".
// Amounts outside the int64 range fall back to plain digits.
func FormatWhole(d decimal.Decimal) string {
	r := RoundWhole(d)
	if r.Abs().GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return "$" + r.StringFixed(0)
	}
	n := r.IntPart()
	if n < 0 {
		return printer.Sprintf("-$%d", -n)
	}
	return printer.Sprintf("$%d", n)
}

// FormatScore renders a sustainability score with one decimal place.
func FormatScore(d decimal.Decimal) string {
	return d.StringFixed(1)
}
