package wizard

import (
	"github.com/cambridgestyling/stylequote/internal/core/domain"
)

// option is one selectable row on an input step.
type option struct {
	value string
	label string
	hint  string
}

// optionsFor lists the rows shown on step, with price hints taken from
// the sheet. Size hints need a chosen service and are blank otherwise.
func optionsFor(step domain.Step, sel domain.QuoteSelection, sheet domain.PriceSheet) []option {
	switch step {
	case domain.StepService:
		services := domain.AllServiceTypes()
		opts := make([]option, 0, len(services))
		for _, s := range services {
			hint := ""
			if from, ok := lowestBase(sheet.BasePrices[s]); ok {
				hint = "from " + domain.FormatGBP(from)
			}
			opts = append(opts, option{value: s.String(), label: s.Label(), hint: hint})
		}
		return opts

	case domain.StepSize:
		sizes := domain.AllPropertySizes()
		opts := make([]option, 0, len(sizes))
		for _, p := range sizes {
			hint := ""
			if price, ok := sheet.BasePrices[sel.ServiceType][p]; ok {
				hint = domain.FormatGBP(price)
			}
			opts = append(opts, option{value: p.String(), label: p.Label(), hint: hint})
		}
		return opts

	case domain.StepPackage:
		levels := domain.AllPackageLevels()
		opts := make([]option, 0, len(levels))
		for _, l := range levels {
			hint := ""
			if m, ok := sheet.PackageMultipliers[l]; ok && m != "1" {
				hint = "×" + m
			}
			opts = append(opts, option{value: l.String(), label: l.Label(), hint: hint})
		}
		return opts

	case domain.StepExtras:
		extras := domain.AllExtraKinds()
		opts := make([]option, 0, len(extras))
		for _, e := range extras {
			hint := ""
			if fee, ok := sheet.ExtraFees[e]; ok && !e.IsMultiplicative() {
				hint = "+" + domain.FormatGBP(fee)
			}
			opts = append(opts, option{value: e.String(), label: e.Label(), hint: hint})
		}
		return opts

	default:
		return nil
	}
}

// isChosen reports whether value is part of the selection for step.
func isChosen(step domain.Step, sel domain.QuoteSelection, value string) bool {
	switch step {
	case domain.StepService:
		return sel.ServiceType.String() == value
	case domain.StepSize:
		return sel.PropertySize.String() == value
	case domain.StepPackage:
		return sel.PackageLevel.String() == value
	case domain.StepExtras:
		return sel.HasExtra(domain.ExtraKind(value))
	default:
		return false
	}
}

func lowestBase(prices map[domain.PropertySize]int64) (int64, bool) {
	var low int64
	found := false
	for _, p := range prices {
		if !found || p < low {
			low = p
			found = true
		}
	}
	return low, found
}
