package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cambridgestyling/stylequote/internal/core/domain"
	"github.com/cambridgestyling/stylequote/internal/core/ports/driving"
)

// selectionFlags are the quote choices shared by quote, enquiry and export.
type selectionFlags struct {
	service string
	size    string
	pkg     string
	extras  []string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.service, "service", "", "service type: airbnb, staging, refresh")
	cmd.Flags().StringVar(&f.size, "size", "", "property size: studio, 2bed, 3bed, 4bed")
	cmd.Flags().StringVar(&f.pkg, "package", "", "package level: essential, premium, turnkey")
	cmd.Flags().StringSliceVar(&f.extras, "extra", nil,
		"add-on, repeatable: photography, listing, garden, express")
}

// flagForStep names the flag that answers a wizard step.
func flagForStep(step domain.Step) string {
	switch step {
	case domain.StepService:
		return "--service"
	case domain.StepSize:
		return "--size"
	case domain.StepPackage:
		return "--package"
	default:
		return "--extra"
	}
}

// submit drives w through every step with the flag values. Each step is
// validated as it is left, so a missing flag is reported at its own step.
func (f *selectionFlags) submit(w driving.Wizard) (*domain.Quote, error) {
	steps := []struct {
		value string
		apply func(string) error
	}{
		{f.service, func(v string) error {
			s, err := domain.ParseServiceType(v)
			if err != nil {
				return err
			}
			return w.SelectService(s)
		}},
		{f.size, func(v string) error {
			p, err := domain.ParsePropertySize(v)
			if err != nil {
				return err
			}
			return w.SelectSize(p)
		}},
		{f.pkg, func(v string) error {
			l, err := domain.ParsePackageLevel(v)
			if err != nil {
				return err
			}
			return w.SelectPackage(l)
		}},
	}

	for _, s := range steps {
		if s.value != "" {
			if err := s.apply(s.value); err != nil {
				return nil, err
			}
		}
		if err := advance(w); err != nil {
			return nil, err
		}
	}

	for _, raw := range f.extras {
		kind, err := domain.ParseExtraKind(raw)
		if err != nil {
			return nil, err
		}
		if err := w.SetExtra(kind, true); err != nil {
			return nil, err
		}
	}

	if err := w.Advance(); err != nil {
		return nil, err
	}
	return w.Quote()
}

func advance(w driving.Wizard) error {
	err := w.Advance()
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("%w (set %s)", verr, flagForStep(verr.Step))
	}
	return err
}
