package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cambridgestyling/stylequote/internal/core/domain"
)

const estimateNote = "Estimate only. Final pricing is confirmed after a property visit."

var (
	quoteSelection selectionFlags
	quoteJSON      bool
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a styling job",
	Long: `Runs the quote wizard without prompting. Each choice is checked in
order, so a missing flag is reported at the step that needs it.

Example:
  stylequote quote --service airbnb --size 2bed --package premium \
    --extra photography --extra express`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

func init() {
	quoteSelection.register(quoteCmd)
	quoteCmd.Flags().BoolVar(&quoteJSON, "json", false, "output the quote as JSON")
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, _ []string) error {
	if quoteService == nil {
		return errors.New("quote service not configured")
	}

	quote, err := quoteSelection.submit(quoteService.NewWizard())
	if err != nil {
		return fmt.Errorf("quote failed: %w", err)
	}

	if quoteJSON {
		return outputQuoteJSON(cmd, quote)
	}
	outputQuoteTable(cmd, quote)
	return nil
}

func outputQuoteJSON(cmd *cobra.Command, quote *domain.Quote) error {
	data, err := json.MarshalIndent(quote, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputQuoteTable(cmd *cobra.Command, quote *domain.Quote) {
	cmd.Printf("Quote %s\n\n", quote.Reference)
	for _, line := range quote.Lines {
		if line.Kind == domain.LineTotal {
			cmd.Printf("  %-40s %10s\n", "", "----------")
		}
		cmd.Printf("  %-40s %10s\n", line.Label, line.Value())
	}
	cmd.Println()
	cmd.Println(estimateNote)
}
