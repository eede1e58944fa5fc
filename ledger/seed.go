package ledger

import "github.com/shopspring/decimal"

// DefaultSeedEntries returns the entries a ledger starts with when none are configured.
func DefaultSeedEntries() []Entry {
	return []Entry{
		NewEntry("Coffee", decimal.RequireFromString("4.50"), "Food"),
		NewEntry("Netflix Subscription", decimal.RequireFromString("15.99"), "Entertainment"),
		NewEntry("Bus Fare", decimal.RequireFromString("2.75"), "Transport"),
	}
}
