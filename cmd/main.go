package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/jrh3k5/budget-tracker/config"
	"github.com/jrh3k5/budget-tracker/log"
	"github.com/jrh3k5/budget-tracker/prompt"
	"github.com/jrh3k5/budget-tracker/qr"
	"github.com/jrh3k5/budget-tracker/tracker"
	"github.com/mdp/qrterminal"
)

const configFileEnvVar = "BUDGET_TRACKER_CONFIG"

func main() {
	ctx := context.Background()

	var file string
	flag.StringVar(&file, "file", "", "the location of the file to be read in as configuration")

	var envFile string
	flag.StringVar(&envFile, "env-file", "", "the location of a dotenv file to load before reading configuration")

	var interactive bool
	flag.BoolVar(&interactive, "interactive", false, "use interactive terminal prompts instead of plain line input")

	var showQRCode bool
	flag.BoolVar(&showQRCode, "qr", false, "show a QR code summarizing the budget when done")

	var verbose bool
	flag.BoolVar(&verbose, "verbose", false, "write debug logging to stderr")

	flag.Parse()

	logConfig := log.DefaultConfig()
	if verbose {
		logConfig.Level = slog.LevelDebug
	}
	logger := log.New(logConfig)

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			panic(fmt.Sprintf("Failed to load environment file '%s': %v", envFile, err))
		}
	}

	if file == "" {
		file = os.Getenv(configFileEnvVar)
	}

	if file != "" {
		logger.Debug("reading configuration", "file", file)
	}

	cfg, err := config.Read(file)
	if err != nil {
		panic(fmt.Sprintf("Failed to read configuration: %v", err))
	}

	seedEntries, err := cfg.GetSeedEntries()
	if err != nil {
		panic(fmt.Sprintf("Failed to resolve seed entries: %v", err))
	}

	var prompter prompt.Prompter
	promptStyle := cfg.GetPromptStyle()
	if interactive {
		promptStyle = config.PromptStyleInteractive
	}
	switch promptStyle {
	case config.PromptStyleLine:
		prompter = prompt.NewLinePrompter(os.Stdin, os.Stdout)
	case config.PromptStyleInteractive:
		prompter = prompt.NewInteractivePrompter()
	default:
		panic(fmt.Sprintf("Unsupported prompt style: %v", promptStyle))
	}

	opts := tracker.Options{
		Out:            os.Stdout,
		Prompter:       prompter,
		SeedEntries:    seedEntries,
		CurrencySymbol: cfg.GetCurrencySymbol(),
		Logger:         logger,
	}

	if showQRCode || cfg.ShowQRCode {
		var generator qr.Generator
		qrCodeType := cfg.GetQRCodeType()
		switch qrCodeType {
		case config.QRCodeTypeSummary:
			generator = qr.NewSummaryGenerator()
		case config.QRCodeTypeItemized:
			generator = qr.NewItemizedGenerator()
		default:
			panic(fmt.Sprintf("Unsupported QR code type: %v", qrCodeType))
		}

		opts.QRGenerator = generator
		opts.QRRenderer = func(payload string, w io.Writer) {
			qrterminal.Generate(payload, qrterminal.M, w)
		}
	}

	budgetLedger, err := tracker.Run(ctx, opts)
	if err != nil {
		panic(fmt.Sprintf("Failed to add budget item: %v", err))
	}

	logger.Debug("session complete", "entries", budgetLedger.Len(), "total", budgetLedger.Total().StringFixed(2))
}
