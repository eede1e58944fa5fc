package ledger

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Ledger is an ordered, append-only collection of entries.
// The zero value is an empty ledger ready for use.
type Ledger struct {
	entries []Entry
}

// New creates a ledger holding the given entries in order.
func New(entries ...Entry) *Ledger {
	l := &Ledger{}
	for _, entry := range entries {
		l.Append(entry)
	}

	return l
}

// Append adds the given entry to the end of the ledger.
func (l *Ledger) Append(entry Entry) {
	l.entries = append(l.entries, entry)
}

// All yields each entry in insertion order alongside its 1-based position.
func (l *Ledger) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, entry := range l.entries {
			if !yield(i+1, entry) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in insertion order.
func (l *Ledger) Entries() []Entry {
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Total sums the amounts of every entry currently in the ledger.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range l.entries {
		total = total.Add(entry.Amount)
	}

	return total
}
