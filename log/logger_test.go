package log_test

import (
	"bytes"
	"log/slog"

	"github.com/jrh3k5/budget-tracker/log"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logger", func() {
	var output *bytes.Buffer

	BeforeEach(func() {
		output = &bytes.Buffer{}
	})

	It("tags records with the component and subcomponent", func() {
		logger := log.New(log.Config{Level: slog.LevelInfo, Component: "budget-tracker", Output: output})
		logger.WithComponent("session").Info("entry appended")

		Expect(output.String()).To(ContainSubstring("component=budget-tracker"))
		Expect(output.String()).To(ContainSubstring("subcomponent=session"))
		Expect(output.String()).To(ContainSubstring(`msg="entry appended"`))
	})

	It("drops records below the configured level", func() {
		logger := log.New(log.Config{Level: slog.LevelInfo, Component: "budget-tracker", Output: output})
		logger.Debug("not shown")

		Expect(output.String()).To(BeEmpty(), "debug records should be dropped at info level")
	})
})
