package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"portafoglio/internal/cli"
	"portafoglio/internal/log"
	"portafoglio/internal/tui"
	"portafoglio/internal/wallet"
)

func main() {
	cli.LoadEnvFile()

	cfg := cli.LoadAndValidateConfig(log.New(log.DefaultConfig()))
	logger, closer := cli.SetupLogger(cfg)
	if closer != nil {
		defer closer.Close()
	}

	st := cli.OpenStore(cfg, logger)

	svc, err := wallet.NewService(context.Background(), st, logger)
	if err != nil {
		logger.Error("Failed to load wallet", log.FieldError, err)
		os.Exit(1)
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Warn("Failed to close store", log.FieldError, err)
		}
	}()

	scanner := cli.BuildScanService(cfg, logger)

	logger.Info("Starting wallet",
		log.FieldOperation, log.OpStartup,
		log.FieldBackend, cfg.DataBackend)

	p := tea.NewProgram(tui.New(svc, scanner, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("UI crashed", log.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Wallet closed", log.FieldOperation, log.OpShutdown)
}
