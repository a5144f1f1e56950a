package services

import (
	"github.com/shopspring/decimal"

	"github.com/cambridgestyling/stylequote/internal/core/domain"
)

// Calculate prices a selection against the table.
//
// The order is fixed: base, times the package multiplier, plus every flat
// extra, then times the express multiplier, rounded once half-up to whole
// pounds. An incomplete selection prices at 0. A table that lacks the
// selected combination also prices at 0 and returns the ErrConfiguration.
func Calculate(sel domain.QuoteSelection, table *PriceTable) (int64, error) {
	subtotal, err := subtotal(sel, table)
	if err != nil {
		return 0, err
	}
	return wholePounds(subtotal), nil
}

func subtotal(sel domain.QuoteSelection, table *PriceTable) (decimal.Decimal, error) {
	if !sel.IsComplete() {
		return decimal.Zero, nil
	}

	base, err := table.BasePrice(sel.ServiceType, sel.PropertySize)
	if err != nil {
		return decimal.Zero, err
	}

	total := base.Mul(table.Multiplier(sel.PackageLevel))
	express := false
	for _, extra := range sel.Extras {
		if extra.IsMultiplicative() {
			express = true
			continue
		}
		total = total.Add(table.ExtraFee(extra))
	}
	if express {
		total = total.Mul(table.ExpressMultiplier())
	}
	return total, nil
}

// BuildBreakdown returns the priced lines for a complete selection:
// the base line, the package line when its multiplier is not 1, one line
// per extra in selection order (express as an Applied marker) and the
// total line last.
func BuildBreakdown(sel domain.QuoteSelection, table *PriceTable) ([]domain.LineItem, error) {
	if err := requireComplete(sel); err != nil {
		return nil, err
	}

	base, err := table.BasePrice(sel.ServiceType, sel.PropertySize)
	if err != nil {
		return nil, err
	}
	total, err := Calculate(sel, table)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.LineItem, 0, len(sel.Extras)+3)
	lines = append(lines, domain.LineItem{
		Kind:   domain.LineBase,
		Label:  sel.ServiceType.Label() + " — " + sel.PropertySize.Label(),
		Amount: wholePounds(base),
	})

	multiplier := table.Multiplier(sel.PackageLevel)
	if !multiplier.Equal(decimal.NewFromInt(1)) {
		lines = append(lines, domain.LineItem{
			Kind:   domain.LinePackage,
			Label:  sel.PackageLevel.Label() + " (×" + multiplier.String() + ")",
			Amount: wholePounds(base.Mul(multiplier)),
		})
	}

	for _, extra := range sel.Extras {
		if extra.IsMultiplicative() {
			lines = append(lines, domain.LineItem{
				Kind:    domain.LineExpress,
				Label:   extra.Label(),
				Applied: true,
			})
			continue
		}
		lines = append(lines, domain.LineItem{
			Kind:   domain.LineExtra,
			Label:  extra.Label(),
			Amount: wholePounds(table.ExtraFee(extra)),
		})
	}

	lines = append(lines, domain.LineItem{
		Kind:   domain.LineTotal,
		Label:  "Estimated Total",
		Amount: total,
	})
	return lines, nil
}

// requireComplete reports the first step whose selection is missing.
func requireComplete(sel domain.QuoteSelection) error {
	for step := domain.StepService; step < domain.StepExtras; step++ {
		if !sel.Satisfies(step) {
			return &domain.ValidationError{Step: step, Field: step.Required()}
		}
	}
	return nil
}
