package domain

import "slices"

// QuoteSelection holds the choices collected during one wizard session.
// A zero value means nothing has been chosen yet.
type QuoteSelection struct {
	ServiceType  ServiceType  `json:"service_type"`
	PropertySize PropertySize `json:"property_size"`
	PackageLevel PackageLevel `json:"package_level"`

	// Extras keeps first-selection order; pricing ignores order,
	// the breakdown and enquiry text follow it.
	Extras []ExtraKind `json:"extras,omitempty"`
}

// Satisfies reports whether the selection required at step is set.
// Steps with no required selection are always satisfied.
func (q QuoteSelection) Satisfies(step Step) bool {
	switch step {
	case StepService:
		return q.ServiceType != ""
	case StepSize:
		return q.PropertySize != ""
	case StepPackage:
		return q.PackageLevel != ""
	default:
		return true
	}
}

// IsComplete returns true when every priced selection is set.
func (q QuoteSelection) IsComplete() bool {
	return q.ServiceType != "" && q.PropertySize != "" && q.PackageLevel != ""
}

// HasExtra returns true if kind has been selected.
func (q QuoteSelection) HasExtra(kind ExtraKind) bool {
	return slices.Contains(q.Extras, kind)
}

// WithExtra returns a copy with kind added or removed.
// Adding an extra already present keeps its original position.
func (q QuoteSelection) WithExtra(kind ExtraKind, present bool) QuoteSelection {
	out := q.Clone()
	idx := slices.Index(out.Extras, kind)
	switch {
	case present && idx < 0:
		out.Extras = append(out.Extras, kind)
	case !present && idx >= 0:
		out.Extras = slices.Delete(out.Extras, idx, idx+1)
	}
	return out
}

// ExtraLabels returns the labels of the selected extras in selection order.
func (q QuoteSelection) ExtraLabels() []string {
	labels := make([]string, 0, len(q.Extras))
	for _, e := range q.Extras {
		labels = append(labels, e.Label())
	}
	return labels
}

// Clone returns a deep copy.
func (q QuoteSelection) Clone() QuoteSelection {
	out := q
	out.Extras = slices.Clone(q.Extras)
	return out
}
