package ledger_test

import (
	"github.com/jrh3k5/budget-tracker/ledger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Ledger", func() {
	var budgetLedger *ledger.Ledger

	BeforeEach(func() {
		budgetLedger = ledger.New(ledger.DefaultSeedEntries()...)
	})

	Context("Total", func() {
		It("sums the seed entries", func() {
			Expect(budgetLedger.Total().Equal(decimal.RequireFromString("23.24"))).To(BeTrue(), "the seed entries should total 23.24, not %s", budgetLedger.Total())
		})

		It("includes appended entries", func() {
			budgetLedger.Append(ledger.NewEntry("Lunch", decimal.RequireFromString("12.00"), "Food"))

			Expect(budgetLedger.Total().Equal(decimal.RequireFromString("35.24"))).To(BeTrue(), "the total should include the appended entry, not %s", budgetLedger.Total())
		})

		It("accepts negative and zero amounts", func() {
			budgetLedger.Append(ledger.NewEntry("Refund", decimal.RequireFromString("-3.24"), ""))
			budgetLedger.Append(ledger.NewEntry("", decimal.Zero, ""))

			Expect(budgetLedger.Len()).To(Equal(5), "no entries should be rejected")
			Expect(budgetLedger.Total().Equal(decimal.RequireFromString("20"))).To(BeTrue(), "the negative amount should reduce the total, not %s", budgetLedger.Total())
		})

		It("returns the same result when called repeatedly", func() {
			first := budgetLedger.Total()
			second := budgetLedger.Total()

			Expect(first.Equal(second)).To(BeTrue(), "totalling without intervening appends should be idempotent")
		})

		It("is zero for an empty ledger", func() {
			var empty ledger.Ledger
			Expect(empty.Total().IsZero()).To(BeTrue(), "an empty ledger should total zero")
		})
	})

	Context("All", func() {
		It("yields entries in insertion order with 1-based positions", func() {
			a := ledger.NewEntry("A", decimal.NewFromInt(1), "x")
			b := ledger.NewEntry("B", decimal.NewFromInt(2), "y")
			c := ledger.NewEntry("C", decimal.NewFromInt(3), "z")

			ordered := &ledger.Ledger{}
			ordered.Append(a)
			ordered.Append(b)
			ordered.Append(c)

			var positions []int
			var names []string
			for position, entry := range ordered.All() {
				positions = append(positions, position)
				names = append(names, entry.Name)
			}

			Expect(positions).To(Equal([]int{1, 2, 3}), "positions should start at 1")
			Expect(names).To(Equal([]string{"A", "B", "C"}), "entries should be yielded in the order they were appended")
		})

		It("can be iterated more than once", func() {
			var first, second []string
			for _, entry := range budgetLedger.All() {
				first = append(first, entry.Name)
			}
			for _, entry := range budgetLedger.All() {
				second = append(second, entry.Name)
			}

			Expect(second).To(Equal(first), "re-iterating should yield the same order")
		})

		It("stops when the consumer stops", func() {
			visited := 0
			for range budgetLedger.All() {
				visited++
				break
			}

			Expect(visited).To(Equal(1), "iteration should stop early")
		})
	})

	Context("Entries", func() {
		It("returns a copy that does not alias the ledger", func() {
			entries := budgetLedger.Entries()
			entries[0].Name = "Tea"

			for position, entry := range budgetLedger.All() {
				if position == 1 {
					Expect(entry.Name).To(Equal("Coffee"), "modifying the copy should not change the ledger")
				}
			}
		})
	})
})
