package onboarding

import (
	"fmt"

	"github.com/MKhiriev/okto-client/internal/validators"
)

// Step is a page of the wizard.
type Step int

const (
	Step1 Step = iota + 1
	Step2
	Step3
	Step4
)

// Steps lists the wizard pages in order.
var Steps = []Step{Step1, Step2, Step3, Step4}

func (s Step) String() string {
	return fmt.Sprintf("step %d", int(s))
}

// Title is the heading shown above the step.
func (s Step) Title() string {
	switch s {
	case Step1:
		return "About you"
	case Step2:
		return "Housing"
	case Step3:
		return "Loans & transport"
	case Step4:
		return "Savings & notifications"
	default:
		return ""
	}
}

// field is the validator field scoping validation to this step.
func (s Step) field() string {
	switch s {
	case Step1:
		return validators.FieldStep1
	case Step2:
		return validators.FieldStep2
	case Step3:
		return validators.FieldStep3
	default:
		return validators.FieldStep4
	}
}

// Action is a navigation request.
type Action int

const (
	ActionBack Action = iota
	ActionNext
)

// transitions is the complete navigation table. Back on the first step and
// Next on the last one stay in place; Next on Step4 submits instead.
var transitions = map[Step]map[Action]Step{
	Step1: {ActionBack: Step1, ActionNext: Step2},
	Step2: {ActionBack: Step1, ActionNext: Step3},
	Step3: {ActionBack: Step2, ActionNext: Step4},
	Step4: {ActionBack: Step3, ActionNext: Step4},
}

// Transition returns the step reached from s by a. Unknown steps map to
// Step1.
func Transition(s Step, a Action) Step {
	next, ok := transitions[s][a]
	if !ok {
		return Step1
	}
	return next
}
