package domain

// Step is the position of the quote wizard.
// Steps 1..TotalSteps collect input; StepResult is the terminal state
// reached only by submitting from the last step.
type Step int

// Wizard steps.
const (
	StepService Step = iota + 1
	StepSize
	StepPackage
	StepExtras
	StepResult
)

// TotalSteps is the number of input steps before the result.
const TotalSteps = 4

// IsInput returns true for steps that collect a selection.
func (s Step) IsInput() bool {
	return s >= StepService && s <= StepExtras
}

// Required names the selection that must be set before leaving the step.
// Returns an empty string when nothing is required.
func (s Step) Required() string {
	switch s {
	case StepService:
		return "service type"
	case StepSize:
		return "property size"
	case StepPackage:
		return "package level"
	default:
		return ""
	}
}

// Title returns the heading shown for the step.
func (s Step) Title() string {
	switch s {
	case StepService:
		return "What service do you need?"
	case StepSize:
		return "How big is the property?"
	case StepPackage:
		return "Choose your package"
	case StepExtras:
		return "Any extras?"
	case StepResult:
		return "Your estimate"
	default:
		return unknownDescription
	}
}
