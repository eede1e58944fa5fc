package qr

import (
	"context"
	"fmt"

	"github.com/jrh3k5/budget-tracker/currency"
)

// SummaryGenerator generates a single line with the total and the number of entries.
// It keeps the QR code small enough to scan from most terminals.
type SummaryGenerator struct {
}

func NewSummaryGenerator() *SummaryGenerator {
	return &SummaryGenerator{}
}

func (*SummaryGenerator) Generate(ctx context.Context, qrDetails *Details) (string, error) {
	itemNoun := "items"
	if len(qrDetails.Entries) == 1 {
		itemNoun = "item"
	}

	return fmt.Sprintf("Total Budget: %s (%d %s)", currency.FormatAmount(qrDetails.CurrencySymbol, qrDetails.Total), len(qrDetails.Entries), itemNoun), nil
}
