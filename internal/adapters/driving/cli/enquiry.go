package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	enquirySelection selectionFlags
	enquiryMailto    bool
)

var enquiryCmd = &cobra.Command{
	Use:   "enquiry",
	Short: "Print a pre-filled enquiry for a quote",
	Long: `Prices the selection and prints the enquiry message to send with it.
With --mailto the message is printed as a mailto: link instead.`,
	Args: cobra.NoArgs,
	RunE: runEnquiry,
}

func init() {
	enquirySelection.register(enquiryCmd)
	enquiryCmd.Flags().BoolVar(&enquiryMailto, "mailto", false, "print a mailto: link")
	rootCmd.AddCommand(enquiryCmd)
}

func runEnquiry(cmd *cobra.Command, _ []string) error {
	if quoteService == nil {
		return errors.New("quote service not configured")
	}

	quote, err := enquirySelection.submit(quoteService.NewWizard())
	if err != nil {
		return fmt.Errorf("enquiry failed: %w", err)
	}

	if enquiryMailto {
		link, err := quoteService.EnquiryMailto(quote.Selection)
		if err != nil {
			return fmt.Errorf("enquiry failed: %w", err)
		}
		cmd.Println(link)
		return nil
	}

	text, err := quoteService.EnquiryText(quote.Selection)
	if err != nil {
		return fmt.Errorf("enquiry failed: %w", err)
	}
	// The message body uses CRLF for mail clients; print plain lines.
	cmd.Println(strings.ReplaceAll(text, "\r\n", "\n"))
	return nil
}
