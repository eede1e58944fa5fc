package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jrh3k5/budget-tracker/currency"
	"github.com/jrh3k5/budget-tracker/ledger"
	"github.com/jrh3k5/budget-tracker/log"
	"github.com/jrh3k5/budget-tracker/prompt"
	"github.com/jrh3k5/budget-tracker/qr"
)

// ErrNoPrompter is returned when a run is started without a prompter.
var ErrNoPrompter = errors.New("a prompter is required")

// QRRenderer draws the given payload as a QR code to the given writer.
type QRRenderer func(payload string, w io.Writer)

// Options configures a single run of the budget tracker.
type Options struct {
	// Out defaults to stdout.
	Out io.Writer
	// Prompter is required.
	Prompter       prompt.Prompter
	SeedEntries    []ledger.Entry
	CurrencySymbol string
	// QRGenerator and QRRenderer are optional; a QR code is only drawn when both are set.
	QRGenerator qr.Generator
	QRRenderer  QRRenderer
	Logger      *log.Logger
}

// Run seeds a ledger, lists its entries and total, prompts for one new entry,
// appends it, and reports the updated total. The resulting ledger is returned.
// If any input cannot be read or the amount cannot be parsed, no entry is appended
// and the error is returned.
func Run(ctx context.Context, opts Options) (*ledger.Ledger, error) {
	if opts.Prompter == nil {
		return nil, ErrNoPrompter
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	symbol := opts.CurrencySymbol
	if symbol == "" {
		symbol = currency.DefaultSymbol
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	logger = logger.WithComponent("session")

	fmt.Fprintln(out, "Welcome to Personal Budget Tracker!")
	fmt.Fprintln(out, "=====================================")

	budgetLedger := ledger.New(opts.SeedEntries...)
	logger.DebugContext(ctx, "seeded ledger", "entries", budgetLedger.Len())

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Your Budget Items:")
	for position, entry := range budgetLedger.All() {
		fmt.Fprintf(out, "%d: ", position)
		entry.Display(out, symbol)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Total Budget: %s\n", currency.FormatAmount(symbol, budgetLedger.Total()))

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Add a new budget item:")

	newEntry, err := readEntry(ctx, opts.Prompter)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Added new item:")
	newEntry.Display(out, symbol)

	budgetLedger.Append(newEntry)
	logger.DebugContext(ctx, "appended entry", "name", newEntry.Name, "amount", newEntry.Amount.String(), "category", newEntry.Category)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Updated Total Budget: %s\n", currency.FormatAmount(symbol, budgetLedger.Total()))

	if opts.QRGenerator != nil && opts.QRRenderer != nil {
		payload, err := opts.QRGenerator.Generate(ctx, qr.DetailsFromLedger(symbol, budgetLedger))
		if err != nil {
			return nil, fmt.Errorf("failed to generate QR code payload: %w", err)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Scan the following QR code to take your budget with you:")
		opts.QRRenderer(payload, out)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Thank you for using Budget Tracker!")

	return budgetLedger, nil
}

// readEntry prompts for the name, amount, and category of an entry, in that order.
func readEntry(ctx context.Context, prompter prompt.Prompter) (ledger.Entry, error) {
	name, err := prompter.Prompt(ctx, "Enter item name:")
	if err != nil {
		return ledger.Entry{}, fmt.Errorf("failed to read item name: %w", err)
	}

	amountText, err := prompter.Prompt(ctx, "Enter amount:")
	if err != nil {
		return ledger.Entry{}, fmt.Errorf("failed to read amount: %w", err)
	}

	amount, err := ledger.ParseAmount(amountText)
	if err != nil {
		return ledger.Entry{}, fmt.Errorf("failed to parse amount: %w", err)
	}

	category, err := prompter.Prompt(ctx, "Enter category:")
	if err != nil {
		return ledger.Entry{}, fmt.Errorf("failed to read category: %w", err)
	}

	return ledger.NewEntry(name, amount, category), nil
}
