package calculator

import (
	"math"
	"strconv"
	"strings"
)

// Decimal places used for outputs.
const (
	// DisplayPrecision applies to kg, percentages and prices.
	DisplayPrecision = 2

	// CreditPrecision applies to credit quantities, which are usually small fractions.
	CreditPrecision = 4
)

// Round rounds x to places decimals by scaling by 10^places, rounding half away
// from zero and scaling back.
//
// The scale step shifts the decimal exponent of x's shortest representation
// instead of multiplying in binary, so values written as x.xx5 round up as
// written: Round(1.005, 2) == 1.01 and Round(2.675, 2) == 2.68.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
		return x
	}
	scaled := math.Round(shiftDecimal(x, places))
	return scaled / math.Pow10(places)
}

// shiftDecimal returns x * 10^places computed on the decimal string of x.
func shiftDecimal(x float64, places int) float64 {
	mantissa, exponent, found := strings.Cut(strconv.FormatFloat(x, 'e', -1, 64), "e")
	if !found {
		return x * math.Pow10(places)
	}
	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return x * math.Pow10(places)
	}
	shifted, err := strconv.ParseFloat(mantissa+"e"+strconv.Itoa(exp+places), 64)
	if err != nil {
		return x * math.Pow10(places)
	}
	return shifted
}
