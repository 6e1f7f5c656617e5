package utils

import (
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// compoundPrecision is the number of decimal places kept between the
// multiplications inside CompoundFactor so digit growth stays bounded
// over long horizons.
const compoundPrecision = 16

// CompoundFactor computes (1+rate)^periods by squaring.
func CompoundFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return one
	}

	base := one.Add(rate)
	result := one
	n := periods

	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base).Round(compoundPrecision)
		}
		base = base.Mul(base).Round(compoundPrecision)
		n >>= 1
	}

	return result
}

// RoundMoney rounds a value to the given number of currency places
func RoundMoney(value decimal.Decimal, places int32) decimal.Decimal {
	return value.Round(places)
}

// DecimalFromFloat converts float64 to decimal.Decimal
func DecimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// DecimalFromString converts string to decimal.Decimal
func DecimalFromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
