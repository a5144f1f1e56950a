package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cambridgestyling/stylequote/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure where enquiries are sent and how the quote is revealed.

Use subcommands to change a single value or run the interactive wizard.`,
	RunE:        runSettingsShow,
	Annotations: map[string]string{annotationNoPricing: ""},
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a single setting",
	Long: `Change a single setting by its config key.

Run 'stylequote settings keys' to list the keys.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the settable config keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

// revealSpeed is a named quote reveal duration offered by the wizard.
type revealSpeed struct {
	label string
	ms    int64
}

var revealSpeeds = []revealSpeed{
	{"Standard", 1500},
	{"Quick", 750},
	{"Slow", 3000},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Enquiry]")
	cmd.Printf("  Recipient: %s\n", orNotSet(settings.Enquiry.Recipient))
	cmd.Printf("  Contact: %s\n", orNotSet(settings.Enquiry.ContactName))
	cmd.Printf("  Business: %s\n", orNotSet(settings.Enquiry.BusinessName))
	status := "configured"
	if !settings.Enquiry.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Animation]")
	cmd.Printf("  Counter: %s\n", settings.Animation.CounterDuration)
	cmd.Printf("  Quote reveal: %s\n", settings.Animation.QuoteDuration)
	cmd.Println()

	if !settings.Enquiry.IsConfigured() {
		cmd.Println("Warning: enquiries have no valid recipient address.")
		cmd.Println("Run 'stylequote settings wizard' to fix this.")
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w (valid keys: %s)", err, strings.Join(settingsService.Keys(), ", "))
		}
		return err
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Stylequote Settings Wizard")
	cmd.Println("==========================")
	cmd.Println("Press Enter to keep the value in brackets.")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Enquiry details
	cmd.Println("Step 1: Enquiry Details")
	cmd.Println("-----------------------")
	prompts := []struct {
		label   string
		key     string
		current string
	}{
		{"Recipient email", "enquiry.recipient", current.Enquiry.Recipient},
		{"Contact name", "enquiry.contact_name", current.Enquiry.ContactName},
		{"Business name", "enquiry.business_name", current.Enquiry.BusinessName},
	}
	for _, p := range prompts {
		cmd.Printf("%s [%s]: ", p.label, p.current)
		input := readLine(reader)
		if input == "" || input == p.current {
			continue
		}
		if err := settingsService.Set(p.key, input); err != nil {
			return fmt.Errorf("failed to set %s: %w", p.label, err)
		}
	}
	cmd.Println()

	// Step 2: Quote reveal speed
	cmd.Println("Step 2: Quote Reveal Speed")
	cmd.Println("--------------------------")
	cmd.Printf("  1. Keep current (%s)\n", current.Animation.QuoteDuration)
	for i, speed := range revealSpeeds {
		cmd.Printf("  %d. %s (%s)\n", i+2, speed.label, time.Duration(speed.ms)*time.Millisecond)
	}
	cmd.Print("\nEnter choice [1]: ")
	choice := parseChoice(readLine(reader), len(revealSpeeds)+1, 1)
	if choice > 1 {
		speed := revealSpeeds[choice-2]
		if err := settingsService.Set("animation.quote_ms", strconv.FormatInt(speed.ms, 10)); err != nil {
			return fmt.Errorf("failed to set reveal speed: %w", err)
		}
	}
	cmd.Println()

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	updated, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !updated.Enquiry.IsConfigured() {
		cmd.Println("Warning: enquiries have no valid recipient address.")
	} else {
		cmd.Println("All settings are valid and saved.")
	}
	return nil
}

// Helper functions.

func readLine(reader *bufio.Reader) string {
	input, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return ""
	}
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func orNotSet(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}
