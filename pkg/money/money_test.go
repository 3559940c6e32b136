package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundWhole(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"2.5", 3},
		{"2.49", 2},
		{"-2.5", -2},
		{"-2.51", -3},
		{"0", 0},
		{"13841.4999", 13841},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := RoundWhole(decimal.RequireFromString(tt.in))
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "RoundWhole(%s) = %s, want %d", tt.in, got, tt.want)
		})
	}
}

func TestPercent(t *testing.T) {
	assert.True(t, Percent(decimal.NewFromInt(7)).Equal(decimal.RequireFromString("1.07")))
	assert.True(t, Percent(decimal.Zero).Equal(decimal.NewFromInt(1)))
	assert.True(t, Percent(decimal.NewFromInt(-3)).Equal(decimal.RequireFromString("0.97")))
}

func TestMinMaxNonNegative(t *testing.T) {
	a := decimal.NewFromInt(5)
	b := decimal.NewFromInt(-5)
	assert.True(t, Min(a, b).Equal(b))
	assert.True(t, Max(a, b).Equal(a))
	assert.True(t, NonNegative(b).IsZero())
	assert.True(t, NonNegative(a).Equal(a))
}

func TestFormatWhole(t *testing.T) {
	assert.Equal(t, "$1,234,567", FormatWhole(decimal.RequireFromString("1234566.5")))
	assert.Equal(t, "-$65,000", FormatWhole(decimal.NewFromInt(-65000)))
	assert.Equal(t, "$0", FormatWhole(decimal.Zero))
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "500.0", FormatScore(decimal.NewFromInt(500)))
	assert.Equal(t, "123.5", FormatScore(decimal.RequireFromString("123.45")))
}
