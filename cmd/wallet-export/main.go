// wallet-export writes the transactions inside a time window as CSV,
// without starting the interactive UI.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	"portafoglio/internal/cli"
	"portafoglio/internal/export"
	"portafoglio/internal/log"
	"portafoglio/internal/stats"
	"portafoglio/internal/wallet"
)

func main() {
	windowFlag := flag.String("window", string(stats.Month), "time window: day, week, month or year")
	outFlag := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	cli.LoadEnvFile()

	cfg := cli.LoadAndValidateConfig(log.New(log.DefaultConfig()))
	logger, closer := cli.SetupLogger(cfg)
	if closer != nil {
		defer closer.Close()
	}

	window, err := stats.ParseWindow(*windowFlag)
	if err != nil {
		logger.Error("Invalid window", log.FieldError, err)
		os.Exit(1)
	}

	st := cli.OpenStore(cfg, logger)

	svc, err := wallet.NewService(context.Background(), st, logger)
	if err != nil {
		logger.Error("Failed to load wallet", log.FieldError, err)
		os.Exit(1)
	}
	defer svc.Close()

	var out io.Writer = os.Stdout
	if *outFlag != "" {
		f, err := os.Create(*outFlag)
		if err != nil {
			logger.Error("Failed to create output file", log.FieldError, err, log.FieldPath, *outFlag)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	filtered, _ := svc.Statistics(window, time.Now())
	if err := export.WriteCSV(out, filtered); err != nil {
		logger.Error("Export failed", log.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Exported transactions",
		log.FieldOperation, log.OpExportRows,
		log.FieldWindow, string(window),
		log.FieldCount, len(filtered))
}
