package utils

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// displayPrecision is the number of fractional digits used for formatted
// amounts in API responses. Conversion math itself is never rounded.
const displayPrecision = 6

// FormatAmount formats an amount with the fixed display precision.
// Example: 1.0493561728 returns "1.049356".
func FormatAmount(amount float64) string {
	return FormatAmountWithPrecision(amount, displayPrecision)
}

// FormatAmountWithPrecision formats an amount with the given precision.
// Non-finite amounts (possible when a conversion ran against a zero
// coefficient) are rendered as-is since decimal cannot represent them.
func FormatAmountWithPrecision(amount float64, precision int) string {
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
	return decimal.NewFromFloat(amount).Round(int32(precision)).String()
}
