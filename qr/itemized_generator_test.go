package qr_test

import (
	"context"

	"github.com/jrh3k5/budget-tracker/ledger"
	"github.com/jrh3k5/budget-tracker/qr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ItemizedGenerator", func() {
	var generator *qr.ItemizedGenerator
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
		generator = qr.NewItemizedGenerator()
	})

	Context("Generate", func() {
		It("lists each entry followed by the total", func() {
			details := qr.DetailsFromLedger("$", ledger.New(ledger.DefaultSeedEntries()...))

			text, err := generator.Generate(ctx, details)
			Expect(err).ToNot(HaveOccurred(), "generating the itemized list should not fail")
			Expect(text).To(Equal("1: Coffee: $4.50 (Food)\n" +
				"2: Netflix Subscription: $15.99 (Entertainment)\n" +
				"3: Bus Fare: $2.75 (Transport)\n" +
				"Total Budget: $23.24"))
		})

		It("only reports the total for an empty ledger", func() {
			text, err := generator.Generate(ctx, qr.DetailsFromLedger("$", &ledger.Ledger{}))
			Expect(err).ToNot(HaveOccurred(), "generating the itemized list should not fail")
			Expect(text).To(Equal("Total Budget: $0.00"))
		})
	})
})
