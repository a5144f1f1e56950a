// Command stylequote prices property styling work from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/cambridgestyling/stylequote/internal/adapters/driven/config/file"
	"github.com/cambridgestyling/stylequote/internal/adapters/driven/export/excel"
	"github.com/cambridgestyling/stylequote/internal/adapters/driven/export/pdf"
	"github.com/cambridgestyling/stylequote/internal/adapters/driven/storage/memory"
	"github.com/cambridgestyling/stylequote/internal/adapters/driving/cli"
	"github.com/cambridgestyling/stylequote/internal/core/ports/driven"
	"github.com/cambridgestyling/stylequote/internal/core/services"
	"github.com/cambridgestyling/stylequote/internal/logger"
)

func main() {
	cli.SetWire(wire)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

func wire(opts cli.Options) (*cli.Services, error) {
	var store driven.ConfigStore
	if opts.NoConfig {
		logger.Debug("config disabled, using built-in defaults")
		store = memory.NewConfigStore()
	} else {
		fileStore, err := file.NewConfigStore(opts.ConfigDir)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		logger.Debug("config loaded from %s", fileStore.Path())
		store = fileStore
	}

	table, err := services.DefaultPriceTable().WithOverrides(store)
	if err != nil {
		if !opts.SkipPricing {
			return nil, fmt.Errorf("load price table: %w", err)
		}
		logger.Warn("ignoring price overrides: %v", err)
		table = services.DefaultPriceTable()
	}

	settings := services.NewSettingsService(store)
	return &cli.Services{
		Quote:    services.NewQuoteService(table, settings),
		Settings: settings,
		Export:   services.NewExportService(settings, excel.New(), pdf.New()),
	}, nil
}
