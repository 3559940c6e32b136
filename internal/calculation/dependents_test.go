package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDependentCost(t *testing.T) {
	one := decimal.NewFromInt(1)
	tests := []struct {
		name    string
		age     int
		scale   decimal.Decimal
		premium bool
		want    string
	}{
		{"not yet born", -1, one, false, "0"},
		{"newborn", 0, one, false, "20000"},
		{"toddler", 4, one, false, "20000"},
		{"school start", 5, one, false, "15000"},
		{"high school", 17, one, false, "15000"},
		{"college first year", 18, one, false, "50000"},
		{"college last year", 21, one, false, "50000"},
		{"premium college", 19, one, true, "80000"},
		{"premium flag ignored outside college", 10, one, true, "15000"},
		{"age 22 stays in the base band", 22, one, false, "15000"},
		{"independent", 23, one, false, "0"},
		{"half scale", 2, decimal.RequireFromString("0.5"), false, "10000"},
		{"fractional scale", 20, decimal.RequireFromString("1.15"), true, "92000"},
		{"zero scale", 3, decimal.Zero, false, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DependentCost(tt.age, tt.scale, tt.premium)
			assertDecimal(t, dec(tt.want), got, tt.name)
		})
	}
}
