package currency

import (
	"github.com/shopspring/decimal"
)

// DefaultSymbol is the currency symbol used when none is configured.
const DefaultSymbol = "$"

// FormatAmount formats the given amount to a symbol-prefixed string with exactly two decimal places.
// Negative amounts keep their sign after the symbol (e.g., "$-4.50").
func FormatAmount(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}
