package qr

import (
	"context"

	"github.com/jrh3k5/budget-tracker/ledger"
	"github.com/shopspring/decimal"
)

// Details describes the ledger contents to be encoded in a QR code.
type Details struct {
	CurrencySymbol string
	Entries        []ledger.Entry
	Total          decimal.Decimal
}

// DetailsFromLedger captures the current entries and total of the given ledger.
func DetailsFromLedger(currencySymbol string, budgetLedger *ledger.Ledger) *Details {
	return &Details{
		CurrencySymbol: currencySymbol,
		Entries:        budgetLedger.Entries(),
		Total:          budgetLedger.Total(),
	}
}

// Generator is used to generate the text payload of a QR code.
type Generator interface {
	// Generate generates the text to be presented in a QR code
	Generate(ctx context.Context, qrDetails *Details) (string, error)
}
