package utils

import "github.com/shopspring/decimal"

// DecimalFromFloat is the single place where provider float payloads enter
// decimal money math.
func DecimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// PercentOf returns part/total*100, or zero when total is not positive.
func PercentOf(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return part.Mul(decimal.NewFromInt(100)).DivRound(total, 4)
}
