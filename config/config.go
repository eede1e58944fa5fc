package config

import (
	"fmt"

	"github.com/jrh3k5/budget-tracker/currency"
	"github.com/jrh3k5/budget-tracker/ledger"
)

const (
	PromptStyleLine        = "line"
	PromptStyleInteractive = "interactive"

	QRCodeTypeSummary  = "summary"
	QRCodeTypeItemized = "itemized"
)

type Config struct {
	CurrencySymbol *string     `yaml:"currency_symbol"`
	PromptStyle    *string     `yaml:"prompt_style"`
	QRCodeType     *string     `yaml:"qr_code_type"`
	ShowQRCode     bool        `yaml:"show_qr_code"`
	SeedEntries    []SeedEntry `yaml:"seed_entries"`
}

// SeedEntry is an entry the ledger starts with.
// The amount is kept as text so that it is parsed exactly as console input is.
type SeedEntry struct {
	Name     string `yaml:"name"`
	Amount   string `yaml:"amount"`
	Category string `yaml:"category"`
}

func (c *Config) GetCurrencySymbol() string {
	if c.CurrencySymbol == nil {
		return currency.DefaultSymbol
	}

	return *c.CurrencySymbol
}

func (c *Config) GetPromptStyle() string {
	if c.PromptStyle == nil {
		return PromptStyleLine
	}

	return *c.PromptStyle
}

func (c *Config) GetQRCodeType() string {
	if c.QRCodeType == nil {
		return QRCodeTypeSummary
	}

	return *c.QRCodeType
}

// GetSeedEntries returns the configured seed entries, or the default entries if none are configured.
func (c *Config) GetSeedEntries() ([]ledger.Entry, error) {
	if len(c.SeedEntries) == 0 {
		return ledger.DefaultSeedEntries(), nil
	}

	entries := make([]ledger.Entry, 0, len(c.SeedEntries))
	for i, seedEntry := range c.SeedEntries {
		amount, err := ledger.ParseAmount(seedEntry.Amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse amount of seed entry %d ('%s'): %w", i+1, seedEntry.Name, err)
		}

		entries = append(entries, ledger.NewEntry(seedEntry.Name, amount, seedEntry.Category))
	}

	return entries, nil
}

// Validate checks that the enumerated settings hold known values and that every seed entry can be parsed.
func (c *Config) Validate() error {
	switch promptStyle := c.GetPromptStyle(); promptStyle {
	case PromptStyleLine, PromptStyleInteractive:
	default:
		return fmt.Errorf("unsupported prompt style: '%s'", promptStyle)
	}

	switch qrCodeType := c.GetQRCodeType(); qrCodeType {
	case QRCodeTypeSummary, QRCodeTypeItemized:
	default:
		return fmt.Errorf("unsupported QR code type: '%s'", qrCodeType)
	}

	if _, err := c.GetSeedEntries(); err != nil {
		return fmt.Errorf("invalid seed entries: %w", err)
	}

	return nil
}
