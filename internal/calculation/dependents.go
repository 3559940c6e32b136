package calculation

import (
	"github.com/shopspring/decimal"
)

// Dependent cost bands in annual real dollars, before the cost scale.
var (
	EarlyChildhoodCost = decimal.NewFromInt(20000) // ages 0-4
	SchoolAgeCost      = decimal.NewFromInt(15000) // ages 5-17 and 22
	CollegeCost        = decimal.NewFromInt(50000) // ages 18-21
	PremiumCollegeCost = decimal.NewFromInt(80000) // ages 18-21, premium tier
)

const (
	MaxDependentAge = 22
	collegeStartAge = 18
	collegeEndAge   = 21
	schoolStartAge  = 5
)

// DependentCost returns one dependent's annual cost at age, multiplied by
// costScale. Ages below zero (not yet born) or above 22 cost nothing.
func DependentCost(age int, costScale decimal.Decimal, premiumTier bool) decimal.Decimal {
	if age < 0 || age > MaxDependentAge {
		return decimal.Zero
	}
	var base decimal.Decimal
	switch {
	case age >= collegeStartAge && age <= collegeEndAge:
		base = CollegeCost
		if premiumTier {
			base = PremiumCollegeCost
		}
	case age < schoolStartAge:
		base = EarlyChildhoodCost
	default:
		base = SchoolAgeCost
	}
	return base.Mul(costScale)
}
