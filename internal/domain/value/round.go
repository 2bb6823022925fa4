package value

import "github.com/shopspring/decimal"

// exactExponent is low enough for any float64 to convert without loss.
const exactExponent = -1074

// Round rounds the exact binary value of x to the given number of decimal
// places, breaking exact ties to even.
func Round(x float64, places int32) float64 {
	return decimal.NewFromFloatWithExponent(x, exactExponent).RoundBank(places).InexactFloat64()
}
