package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cambridgestyling/stylequote/internal/core/domain"
	"github.com/cambridgestyling/stylequote/internal/logger"
)

var (
	exportSelection selectionFlags
	exportFormat    string
	exportOut       string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Save a quote as a spreadsheet or PDF",
	Long: `Prices the selection and writes the quote document.

The file defaults to quote-<reference>.<format> in the current directory.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportSelection.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(domain.ExportPDF), "document format: xlsx, pdf")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if quoteService == nil {
		return errors.New("quote service not configured")
	}
	if exportService == nil {
		return errors.New("export service not configured")
	}

	format, err := domain.ParseExportFormat(exportFormat)
	if err != nil {
		return err
	}

	quote, err := exportSelection.submit(quoteService.NewWizard())
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	data, err := exportService.Export(quote, format)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	path := exportOut
	if path == "" {
		path = quote.FileName(format)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Debug("wrote %d bytes to %s", len(data), path)

	cmd.Printf("Saved quote %s (%s) to %s\n", quote.Reference, domain.FormatGBP(quote.Total), path)
	return nil
}
