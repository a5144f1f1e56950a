package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cambridgestyling/stylequote/internal/adapters/driven/export/excel"
	"github.com/cambridgestyling/stylequote/internal/adapters/driven/export/pdf"
	"github.com/cambridgestyling/stylequote/internal/adapters/driven/storage/memory"
	"github.com/cambridgestyling/stylequote/internal/core/domain"
	"github.com/cambridgestyling/stylequote/internal/core/services"
)

// mockExportService implements driving.ExportService for testing.
type mockExportService struct {
	data []byte
	err  error
}

func (m *mockExportService) Export(_ *domain.Quote, _ domain.ExportFormat) ([]byte, error) {
	return m.data, m.err
}

func (m *mockExportService) Formats() []domain.ExportFormat {
	return domain.AllExportFormats()
}

// setupTestServices wires real services over an in-memory config store and
// restores the previous services when the test ends.
func setupTestServices(t *testing.T) {
	t.Helper()

	oldQuote, oldSettings, oldExport := quoteService, settingsService, exportService
	t.Cleanup(func() {
		quoteService, settingsService, exportService = oldQuote, oldSettings, oldExport
	})

	settings := services.NewSettingsService(memory.NewConfigStore())
	SetServices(&Services{
		Quote:    services.NewQuoteService(nil, settings),
		Settings: settings,
		Export:   services.NewExportService(settings, excel.New(), pdf.New()),
	})
}

// execute runs rootCmd with args and returns its combined output. Flags are
// reset afterwards so values do not leak between tests.
func execute(t *testing.T, args ...string) (string, error) {
	return executeWithInput(t, "", args...)
}

func executeWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

var workedExample = []string{
	"--service", "airbnb",
	"--size", "2bed",
	"--package", "premium",
	"--extra", "photography",
	"--extra", "express",
}
