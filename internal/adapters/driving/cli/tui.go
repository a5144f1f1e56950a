package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui"
	"github.com/cambridgestyling/stylequote/internal/logger"
)

var tuiOutDir string

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive quote wizard",
	Long: `Launch the interactive terminal quote wizard.

Controls:
  ↑/k, ↓/j - Move between options
  Space/x  - Choose an option (toggle on the extras step)
  Enter/→  - Next step / Get quote
  ←/h      - Previous step
  e        - Enquiry message (result)
  r        - Start again (result)
  s / p    - Save the quote as a spreadsheet / PDF (result)
  Esc      - Back to menu
  ?        - Help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiOutDir, "out-dir", "", "directory for saved quotes (default current directory)")
	rootCmd.AddCommand(tuiCmd)
}

// newTUIApp builds the TUI from the injected services.
func newTUIApp() (*tui.App, error) {
	app, err := tui.NewApp(tui.NewPorts(quoteService, exportService, settingsService))
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	return app.WithOutputDir(tuiOutDir), nil
}

func runTUI(_ *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	app, err := newTUIApp()
	if err != nil {
		return err
	}

	// Log lines would tear the alt-screen frame.
	logger.SetMuted(true)
	defer logger.SetMuted(false)

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
