// Package cli provides the cobra command tree for stylequote.
// It is a driving adapter: commands talk to the core only through the
// driving ports injected by the entry point.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cambridgestyling/stylequote/internal/core/ports/driving"
	"github.com/cambridgestyling/stylequote/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	configDir string
	noConfig  bool
	verbose   bool
)

// Services injected before a command runs.
var (
	quoteService    driving.QuoteService
	settingsService driving.SettingsService
	exportService   driving.ExportService
)

// Options carries the global flags to the wiring function.
type Options struct {
	// ConfigDir overrides the default ~/.stylequote directory.
	ConfigDir string

	// NoConfig keeps settings in memory only.
	NoConfig bool

	Verbose bool

	// SkipPricing is set for commands that never price a quote, so a
	// broken pricing override does not stop them running.
	SkipPricing bool
}

// Services are the driving ports the commands run against.
type Services struct {
	Quote    driving.QuoteService
	Settings driving.SettingsService
	Export   driving.ExportService
}

// WireFunc builds the services once flags are parsed.
type WireFunc func(opts Options) (*Services, error)

var wire WireFunc

// annotationNoPricing marks a command tree that never prices a quote.
const annotationNoPricing = "stylequote/no-pricing"

var rootCmd = &cobra.Command{
	Use:   "stylequote",
	Short: "Property styling quote calculator",
	Long: `stylequote prices property styling work: Airbnb fit-outs, staging to
sell and full refreshes, by property size, package and extras.

Run without a subcommand in a terminal to open the interactive quote wizard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if wire == nil {
			return nil
		}
		svcs, err := wire(Options{
			ConfigDir:   configDir,
			NoConfig:    noConfig,
			Verbose:     verbose,
			SkipPricing: !needsPricing(cmd),
		})
		if err != nil {
			return err
		}
		SetServices(svcs)
		return nil
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.stylequote)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "ignore the config file and use built-in defaults")
}

// SetWire sets the function that builds services after flag parsing.
func SetWire(fn WireFunc) {
	wire = fn
}

// SetServices injects the driving ports used by every command.
func SetServices(svcs *Services) {
	if svcs == nil {
		quoteService, settingsService, exportService = nil, nil, nil
		return
	}
	quoteService = svcs.Quote
	settingsService = svcs.Settings
	exportService = svcs.Export
}

// needsPricing reports whether cmd or any of its parents may price a quote.
func needsPricing(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationNoPricing]; ok {
			return false
		}
	}
	return true
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// interactive reports whether stdin and stdout are both terminals.
var interactive = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

func runRoot(cmd *cobra.Command, args []string) error {
	if interactive() {
		return runTUI(cmd, args)
	}
	return cmd.Help()
}
