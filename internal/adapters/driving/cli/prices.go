package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cambridgestyling/stylequote/internal/core/domain"
)

var pricesJSON bool

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Show the price list",
	Args:  cobra.NoArgs,
	RunE:  runPrices,
}

func init() {
	pricesCmd.Flags().BoolVar(&pricesJSON, "json", false, "output the price list as JSON")
	rootCmd.AddCommand(pricesCmd)
}

func runPrices(cmd *cobra.Command, _ []string) error {
	if quoteService == nil {
		return errors.New("quote service not configured")
	}

	sheet := quoteService.PriceSheet()
	if pricesJSON {
		data, err := json.MarshalIndent(sheet, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal price list: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Base prices (" + sheet.Currency + ")")
	cmd.Println()
	for _, s := range domain.AllServiceTypes() {
		cmd.Printf("[%s]\n", s.Label())
		for _, p := range domain.AllPropertySizes() {
			value := "-"
			if price, ok := sheet.BasePrices[s][p]; ok {
				value = domain.FormatGBP(price)
			}
			cmd.Printf("  %-24s %10s\n", p.Label(), value)
		}
		cmd.Println()
	}

	cmd.Println("[Packages]")
	for _, l := range domain.AllPackageLevels() {
		if m, ok := sheet.PackageMultipliers[l]; ok {
			cmd.Printf("  %-24s %10s\n", l.Label(), "×"+m)
		}
	}
	cmd.Println()

	cmd.Println("[Extras]")
	for _, e := range domain.AllExtraKinds() {
		if e.IsMultiplicative() {
			cmd.Printf("  %-32s %10s\n", e.Label(), "×"+sheet.ExpressMultiplier)
			continue
		}
		if fee, ok := sheet.ExtraFees[e]; ok {
			cmd.Printf("  %-32s %10s\n", e.Label(), "+"+domain.FormatGBP(fee))
		}
	}
	return nil
}
