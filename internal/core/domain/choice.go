package domain

import "fmt"

// ServiceType is the category of styling service being quoted.
type ServiceType string

// Available service types.
const (
	// ServiceAirbnb is a full Airbnb fit-out and design.
	ServiceAirbnb ServiceType = "airbnb"

	// ServiceStaging is staging a property to sell.
	ServiceStaging ServiceType = "staging"

	// ServiceRefresh is a full property refresh.
	ServiceRefresh ServiceType = "refresh"
)

// AllServiceTypes returns the service types in display order.
func AllServiceTypes() []ServiceType {
	return []ServiceType{ServiceAirbnb, ServiceStaging, ServiceRefresh}
}

// IsValid returns true if the service type is recognised.
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceAirbnb, ServiceStaging, ServiceRefresh:
		return true
	default:
		return false
	}
}

// Label returns the customer-facing name.
// Unknown values fall back to the raw value.
func (s ServiceType) Label() string {
	switch s {
	case ServiceAirbnb:
		return "Airbnb Fit-Out & Design"
	case ServiceStaging:
		return "Property Staging to Sell"
	case ServiceRefresh:
		return "Full Property Refresh"
	default:
		return string(s)
	}
}

// String returns the string representation.
func (s ServiceType) String() string {
	return string(s)
}

// ParseServiceType converts a raw value into a ServiceType.
func ParseServiceType(v string) (ServiceType, error) {
	s := ServiceType(v)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, v)
	}
	return s, nil
}

// PropertySize is the bedroom-count bucket used as a pricing tier.
type PropertySize string

// Available property sizes.
const (
	SizeStudio PropertySize = "studio"
	Size2Bed   PropertySize = "2bed"
	Size3Bed   PropertySize = "3bed"
	Size4Bed   PropertySize = "4bed"
)

// AllPropertySizes returns the property sizes in display order.
func AllPropertySizes() []PropertySize {
	return []PropertySize{SizeStudio, Size2Bed, Size3Bed, Size4Bed}
}

// IsValid returns true if the property size is recognised.
func (p PropertySize) IsValid() bool {
	switch p {
	case SizeStudio, Size2Bed, Size3Bed, Size4Bed:
		return true
	default:
		return false
	}
}

// Label returns the customer-facing name.
// Unknown values fall back to the raw value.
func (p PropertySize) Label() string {
	switch p {
	case SizeStudio:
		return "Studio / 1 Bedroom"
	case Size2Bed:
		return "2 Bedroom"
	case Size3Bed:
		return "3 Bedroom"
	case Size4Bed:
		return "4+ Bedroom"
	default:
		return string(p)
	}
}

// String returns the string representation.
func (p PropertySize) String() string {
	return string(p)
}

// ParsePropertySize converts a raw value into a PropertySize.
func ParsePropertySize(v string) (PropertySize, error) {
	p := PropertySize(v)
	if !p.IsValid() {
		return "", fmt.Errorf("%w: unknown property size %q", ErrInvalidInput, v)
	}
	return p, nil
}

// PackageLevel is the service tier applied as a multiplier.
type PackageLevel string

// Available package levels.
const (
	PackageEssential PackageLevel = "essential"
	PackagePremium   PackageLevel = "premium"
	PackageTurnkey   PackageLevel = "turnkey"
)

// AllPackageLevels returns the package levels in display order.
func AllPackageLevels() []PackageLevel {
	return []PackageLevel{PackageEssential, PackagePremium, PackageTurnkey}
}

// IsValid returns true if the package level is recognised.
func (l PackageLevel) IsValid() bool {
	switch l {
	case PackageEssential, PackagePremium, PackageTurnkey:
		return true
	default:
		return false
	}
}

// Label returns the customer-facing name.
// Unknown values fall back to the raw value.
func (l PackageLevel) Label() string {
	switch l {
	case PackageEssential:
		return "Essential Package"
	case PackagePremium:
		return "Premium Package"
	case PackageTurnkey:
		return "Turnkey Package"
	default:
		return string(l)
	}
}

// String returns the string representation.
func (l PackageLevel) String() string {
	return string(l)
}

// ParsePackageLevel converts a raw value into a PackageLevel.
func ParsePackageLevel(v string) (PackageLevel, error) {
	l := PackageLevel(v)
	if !l.IsValid() {
		return "", fmt.Errorf("%w: unknown package level %q", ErrInvalidInput, v)
	}
	return l, nil
}

// ExtraKind is an optional add-on. All kinds except ExtraExpress carry a
// flat fee; express is a multiplicative surcharge.
type ExtraKind string

// Available extras.
const (
	ExtraPhotography ExtraKind = "photography"
	ExtraListing     ExtraKind = "listing"
	ExtraGarden      ExtraKind = "garden"
	ExtraExpress     ExtraKind = "express"
)

// AllExtraKinds returns the extras in display order.
func AllExtraKinds() []ExtraKind {
	return []ExtraKind{ExtraPhotography, ExtraListing, ExtraGarden, ExtraExpress}
}

// IsValid returns true if the extra is recognised.
func (e ExtraKind) IsValid() bool {
	switch e {
	case ExtraPhotography, ExtraListing, ExtraGarden, ExtraExpress:
		return true
	default:
		return false
	}
}

// IsMultiplicative reports whether the extra scales the subtotal
// instead of adding a flat fee.
func (e ExtraKind) IsMultiplicative() bool {
	return e == ExtraExpress
}

// Label returns the customer-facing name.
// Unknown values fall back to the raw value.
func (e ExtraKind) Label() string {
	switch e {
	case ExtraPhotography:
		return "Professional Photography"
	case ExtraListing:
		return "Airbnb Listing Copy"
	case ExtraGarden:
		return "Outdoor / Garden Styling"
	case ExtraExpress:
		return "Express Delivery (+25%)"
	default:
		return string(e)
	}
}

// String returns the string representation.
func (e ExtraKind) String() string {
	return string(e)
}

// ParseExtraKind converts a raw value into an ExtraKind.
func ParseExtraKind(v string) (ExtraKind, error) {
	e := ExtraKind(v)
	if !e.IsValid() {
		return "", fmt.Errorf("%w: unknown extra %q", ErrInvalidInput, v)
	}
	return e, nil
}
