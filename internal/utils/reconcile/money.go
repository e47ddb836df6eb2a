package reconcile

import "github.com/shopspring/decimal"

// VAT constants for the single positive rate in this jurisdiction. The 1.2
// divisor converts a TTC amount at 20% back to HT. No other rate exists.
var (
	vatDivisor20 = decimal.NewFromFloat(1.2)
	hundred      = decimal.NewFromInt(100)
)

// Round2 rounds a monetary amount to 2 decimal places, half away from zero.
// Every intermediate step of the reconciliation rounds with this function;
// historical closure totals depend on rounding per step, not once at the end.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
