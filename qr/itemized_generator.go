package qr

import (
	"context"
	"fmt"
	"strings"

	"github.com/jrh3k5/budget-tracker/currency"
)

// ItemizedGenerator generates one line per entry, numbered as they are displayed,
// followed by the total.
type ItemizedGenerator struct {
}

func NewItemizedGenerator() *ItemizedGenerator {
	return &ItemizedGenerator{}
}

func (*ItemizedGenerator) Generate(ctx context.Context, qrDetails *Details) (string, error) {
	lines := make([]string, 0, len(qrDetails.Entries)+1)
	for i, entry := range qrDetails.Entries {
		lines = append(lines, fmt.Sprintf("%d: %s", i+1, entry.Format(qrDetails.CurrencySymbol)))
	}

	lines = append(lines, "Total Budget: "+currency.FormatAmount(qrDetails.CurrencySymbol, qrDetails.Total))

	return strings.Join(lines, "\n"), nil
}
