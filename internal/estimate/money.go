package estimate

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Round2 rounds a monetary amount to 2 decimal places, half away from zero.
// Decimal arithmetic avoids the float drift of repeated multiplication.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// MonthlyCost computes round2(unitPrice × quantity × hours).
func MonthlyCost(unitPrice, quantity, hours float64) float64 {
	cost := decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromFloat(quantity)).
		Mul(decimal.NewFromFloat(hours))
	f, _ := cost.Round(2).Float64()
	return f
}

// SumRounded totals already-rounded line items and rounds the sum. Totals are
// never accumulated in unrounded floating form across a response.
func SumRounded(costs []float64) float64 {
	total := decimal.Zero
	for _, c := range costs {
		total = total.Add(decimal.NewFromFloat(c))
	}
	f, _ := total.Round(2).Float64()
	return f
}

// trimFloat formats a float without trailing zeros for note strings.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
