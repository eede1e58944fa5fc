package ledger

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jrh3k5/budget-tracker/currency"
	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when an amount cannot be parsed as a decimal number.
var ErrInvalidAmount = errors.New("please enter a valid number")

const (
	// maxAmountExponent bounds the decimal exponent in either direction.
	maxAmountExponent = 30
	maxAmountDigits   = 40
)

// Entry is a single named, categorized amount tracked in a ledger.
type Entry struct {
	Name     string
	Amount   decimal.Decimal
	Category string
}

// NewEntry creates an entry. Neither the name nor the category are validated.
func NewEntry(name string, amount decimal.Decimal, category string) Entry {
	return Entry{
		Name:     name,
		Amount:   amount,
		Category: category,
	}
}

// Format renders the entry as "name: $amount (category)" using the given currency symbol.
func (e Entry) Format(symbol string) string {
	return fmt.Sprintf("%s: %s (%s)", e.Name, currency.FormatAmount(symbol, e.Amount), e.Category)
}

func (e Entry) String() string {
	return e.Format(currency.DefaultSymbol)
}

// Display writes the formatted entry, followed by a newline, to the given writer.
func (e Entry) Display(w io.Writer, symbol string) {
	fmt.Fprintln(w, e.Format(symbol))
}

// ParseAmount parses the given text, ignoring surrounding whitespace, as a decimal amount.
// Any sign is accepted; amounts with extreme exponents or too many digits are rejected.
func ParseAmount(text string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(text)
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: '%s' (%v)", ErrInvalidAmount, trimmed, err)
	}

	if exponent := amount.Exponent(); exponent > maxAmountExponent || exponent < -maxAmountExponent {
		return decimal.Zero, fmt.Errorf("%w: '%s' (exponent %d is out of range)", ErrInvalidAmount, trimmed, exponent)
	}

	if digits := amount.NumDigits(); digits > maxAmountDigits {
		return decimal.Zero, fmt.Errorf("%w: '%s' (%d digits is too many)", ErrInvalidAmount, trimmed, digits)
	}

	return amount, nil
}
