package services

import (
	"errors"
	"fmt"
	"maps"

	"github.com/shopspring/decimal"

	"github.com/cambridgestyling/stylequote/internal/core/domain"
	"github.com/cambridgestyling/stylequote/internal/core/ports/driven"
	"github.com/cambridgestyling/stylequote/internal/logger"
)

// Currency is the ISO code all prices are quoted in.
const Currency = "GBP"

// Config keys for price overrides.
const (
	keyPricingBase    = "pricing.base"
	keyPricingPackage = "pricing.package"
	keyPricingExtra   = "pricing.extra"
	keyPricingExpress = "pricing.express_multiplier"
)

// PriceTable maps selections to prices. It is read-only once built;
// WithOverrides returns a new table rather than mutating.
type PriceTable struct {
	basePrices         map[domain.ServiceType]map[domain.PropertySize]decimal.Decimal
	packageMultipliers map[domain.PackageLevel]decimal.Decimal
	extraFees          map[domain.ExtraKind]decimal.Decimal
	expressMultiplier  decimal.Decimal
}

// NewPriceTable builds a table from the given maps. The maps are copied.
// Any express entry in fees is ignored; express is priced by expressMultiplier.
func NewPriceTable(
	base map[domain.ServiceType]map[domain.PropertySize]decimal.Decimal,
	multipliers map[domain.PackageLevel]decimal.Decimal,
	fees map[domain.ExtraKind]decimal.Decimal,
	expressMultiplier decimal.Decimal,
) *PriceTable {
	t := &PriceTable{
		basePrices:         make(map[domain.ServiceType]map[domain.PropertySize]decimal.Decimal, len(base)),
		packageMultipliers: maps.Clone(multipliers),
		extraFees:          make(map[domain.ExtraKind]decimal.Decimal, len(fees)),
		expressMultiplier:  expressMultiplier,
	}
	for s, sizes := range base {
		t.basePrices[s] = maps.Clone(sizes)
	}
	if t.packageMultipliers == nil {
		t.packageMultipliers = make(map[domain.PackageLevel]decimal.Decimal)
	}
	for k, v := range fees {
		if k.IsMultiplicative() {
			continue
		}
		t.extraFees[k] = v
	}
	return t
}

// DefaultPriceTable returns the published GBP price list.
func DefaultPriceTable() *PriceTable {
	gbp := decimal.NewFromInt
	return NewPriceTable(
		map[domain.ServiceType]map[domain.PropertySize]decimal.Decimal{
			domain.ServiceAirbnb: {
				domain.SizeStudio: gbp(1800),
				domain.Size2Bed:   gbp(3200),
				domain.Size3Bed:   gbp(5000),
				domain.Size4Bed:   gbp(7500),
			},
			domain.ServiceStaging: {
				domain.SizeStudio: gbp(1200),
				domain.Size2Bed:   gbp(2200),
				domain.Size3Bed:   gbp(3500),
				domain.Size4Bed:   gbp(5000),
			},
			domain.ServiceRefresh: {
				domain.SizeStudio: gbp(600),
				domain.Size2Bed:   gbp(1100),
				domain.Size3Bed:   gbp(1800),
				domain.Size4Bed:   gbp(2800),
			},
		},
		map[domain.PackageLevel]decimal.Decimal{
			domain.PackageEssential: decimal.RequireFromString("1.0"),
			domain.PackagePremium:   decimal.RequireFromString("1.5"),
			domain.PackageTurnkey:   decimal.RequireFromString("2.2"),
		},
		map[domain.ExtraKind]decimal.Decimal{
			domain.ExtraPhotography: gbp(350),
			domain.ExtraListing:     gbp(150),
			domain.ExtraGarden:      gbp(450),
		},
		decimal.RequireFromString("1.25"),
	)
}

// BasePrice returns the tabulated price for a service and size.
// A missing pair means the table and the domain enums disagree.
func (t *PriceTable) BasePrice(s domain.ServiceType, p domain.PropertySize) (decimal.Decimal, error) {
	price, ok := t.basePrices[s][p]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no base price for %s/%s", domain.ErrConfiguration, s, p)
	}
	return price, nil
}

// Multiplier returns the package multiplier, or 1 if the level is absent.
func (t *PriceTable) Multiplier(level domain.PackageLevel) decimal.Decimal {
	m, ok := t.packageMultipliers[level]
	if !ok {
		return decimal.NewFromInt(1)
	}
	return m
}

// ExtraFee returns the flat fee for an extra, or 0 if absent.
// Express is never a flat fee and always returns 0.
func (t *PriceTable) ExtraFee(kind domain.ExtraKind) decimal.Decimal {
	if kind.IsMultiplicative() {
		return decimal.Zero
	}
	fee, ok := t.extraFees[kind]
	if !ok {
		return decimal.Zero
	}
	return fee
}

// ExpressMultiplier returns the surcharge factor applied after add-ons.
func (t *PriceTable) ExpressMultiplier() decimal.Decimal {
	return t.expressMultiplier
}

// Validate checks the table covers every combination the enums allow.
// All violations are reported together, each wrapping ErrConfiguration.
func (t *PriceTable) Validate() error {
	var errs []error
	one := decimal.NewFromInt(1)

	for _, s := range domain.AllServiceTypes() {
		for _, p := range domain.AllPropertySizes() {
			price, ok := t.basePrices[s][p]
			switch {
			case !ok:
				errs = append(errs, fmt.Errorf("%w: missing base price %s/%s", domain.ErrConfiguration, s, p))
			case price.IsNegative():
				errs = append(errs, fmt.Errorf("%w: negative base price %s/%s", domain.ErrConfiguration, s, p))
			}
		}
	}
	for _, l := range domain.AllPackageLevels() {
		m, ok := t.packageMultipliers[l]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("%w: missing multiplier for %s", domain.ErrConfiguration, l))
		case m.LessThan(one):
			errs = append(errs, fmt.Errorf("%w: multiplier for %s is below 1", domain.ErrConfiguration, l))
		}
	}
	for _, e := range domain.AllExtraKinds() {
		if e.IsMultiplicative() {
			continue
		}
		fee, ok := t.extraFees[e]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("%w: missing fee for %s", domain.ErrConfiguration, e))
		case fee.IsNegative():
			errs = append(errs, fmt.Errorf("%w: negative fee for %s", domain.ErrConfiguration, e))
		}
	}
	if !t.expressMultiplier.IsPositive() {
		errs = append(errs, fmt.Errorf("%w: express multiplier must be positive", domain.ErrConfiguration))
	}

	return errors.Join(errs...)
}

// WithOverrides returns a copy of the table with pricing.* keys from the
// config store applied, then validated. Unknown keys are ignored with a warning.
func (t *PriceTable) WithOverrides(store driven.ConfigStore) (*PriceTable, error) {
	out := NewPriceTable(t.basePrices, t.packageMultipliers, t.extraFees, t.expressMultiplier)
	if store == nil {
		return out, nil
	}

	for _, s := range domain.AllServiceTypes() {
		for _, p := range domain.AllPropertySizes() {
			key := keyPricingBase + "." + s.String() + "." + p.String()
			if v, ok, err := decimalSetting(store, key); err != nil {
				return nil, err
			} else if ok {
				if out.basePrices[s] == nil {
					out.basePrices[s] = make(map[domain.PropertySize]decimal.Decimal)
				}
				out.basePrices[s][p] = v
				logger.Debug("pricing override %s = %s", key, v)
			}
		}
	}
	for _, l := range domain.AllPackageLevels() {
		key := keyPricingPackage + "." + l.String()
		if v, ok, err := decimalSetting(store, key); err != nil {
			return nil, err
		} else if ok {
			out.packageMultipliers[l] = v
			logger.Debug("pricing override %s = %s", key, v)
		}
	}
	for _, e := range domain.AllExtraKinds() {
		key := keyPricingExtra + "." + e.String()
		v, ok, err := decimalSetting(store, key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if e.IsMultiplicative() {
			logger.Warn("ignoring %s: use %s instead", key, keyPricingExpress)
			continue
		}
		out.extraFees[e] = v
		logger.Debug("pricing override %s = %s", key, v)
	}
	if v, ok, err := decimalSetting(store, keyPricingExpress); err != nil {
		return nil, err
	} else if ok {
		out.expressMultiplier = v
		logger.Debug("pricing override %s = %s", keyPricingExpress, v)
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Sheet returns a display snapshot of the table.
func (t *PriceTable) Sheet() domain.PriceSheet {
	sheet := domain.PriceSheet{
		Currency:           Currency,
		BasePrices:         make(map[domain.ServiceType]map[domain.PropertySize]int64, len(t.basePrices)),
		PackageMultipliers: make(map[domain.PackageLevel]string, len(t.packageMultipliers)),
		ExtraFees:          make(map[domain.ExtraKind]int64, len(t.extraFees)),
		ExpressMultiplier:  t.expressMultiplier.String(),
	}
	for s, sizes := range t.basePrices {
		row := make(map[domain.PropertySize]int64, len(sizes))
		for p, price := range sizes {
			row[p] = wholePounds(price)
		}
		sheet.BasePrices[s] = row
	}
	for l, m := range t.packageMultipliers {
		sheet.PackageMultipliers[l] = m.String()
	}
	for e, fee := range t.extraFees {
		sheet.ExtraFees[e] = wholePounds(fee)
	}
	return sheet
}

// decimalSetting reads a numeric config value. TOML yields int64 or
// float64; strings are accepted so exact decimals can be written as "1.25".
func decimalSetting(store driven.ConfigStore, key string) (decimal.Decimal, bool, error) {
	raw, ok := store.Get(key)
	if !ok {
		return decimal.Zero, false, nil
	}
	switch v := raw.(type) {
	case int64:
		return decimal.NewFromInt(v), true, nil
	case int:
		return decimal.NewFromInt(int64(v)), true, nil
	case float64:
		return decimal.NewFromFloat(v), true, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, false, fmt.Errorf("%w: %s: %v", domain.ErrConfiguration, key, err)
		}
		return d, true, nil
	default:
		return decimal.Zero, false, fmt.Errorf("%w: %s: unsupported value %v", domain.ErrConfiguration, key, raw)
	}
}

// wholePounds rounds half-up to the nearest pound.
func wholePounds(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
