package checkout

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
)

// Step represents the active step of a checkout session.
//
// Step order:
//
//	cart ──> details ──> payment ──> confirmation
//	  ▲         ▲ │          │
//	  └─────────┴─┴──────────┘
//	   (backward navigation)
//
// Forward moves are guarded and cannot skip a step. Backward moves are free
// except out of confirmation, which is terminal for the session.
type Step int

const (
	// StepUnknown represents an invalid or undefined step.
	StepUnknown Step = iota

	// StepCart is the initial step: the customer reviews cart contents.
	StepCart

	// StepDetails collects the shipping address.
	StepDetails

	// StepPayment selects the payment method and submits the order.
	StepPayment

	// StepConfirmation shows the placed order. Terminal for the session.
	StepConfirmation
)

// ErrInvalidStepTransition is the sentinel error for illegal step moves.
var ErrInvalidStepTransition = errors.New("invalid checkout step transition")

// InvalidStepTransitionError reports an attempted step move outside the
// machine's rules. The session it was attempted on is left unchanged.
type InvalidStepTransitionError struct {
	From Step
	To   Step
}

// NewInvalidStepTransitionError creates an InvalidStepTransitionError for the given pair.
func NewInvalidStepTransitionError(from, to Step) *InvalidStepTransitionError {
	return &InvalidStepTransitionError{From: from, To: to}
}

func (e *InvalidStepTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidStepTransition, e.From, e.To)
}

func (e *InvalidStepTransitionError) Unwrap() error {
	return ErrInvalidStepTransition
}

func getStepStrings() map[Step]string {
	return map[Step]string{
		StepCart:         "cart",
		StepDetails:      "details",
		StepPayment:      "payment",
		StepConfirmation: "confirmation",
	}
}

// StepFromString parses the wire representation of a step.
func StepFromString(s string) (Step, error) {
	for step, str := range getStepStrings() {
		if str == s {
			return step, nil
		}
	}
	return StepUnknown, errs.NewValueIsInvalidErrorWithCause("step",
		fmt.Errorf("%q is not a valid checkout step", s))
}

// String returns the wire name of the step.
// Implements the fmt.Stringer interface; safe on any value.
func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Step value is one of the defined steps.
func (s Step) Validate() error {
	if _, ok := getStepStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("step",
			fmt.Errorf("%d is not a valid checkout step", s))
	}
	return nil
}

// CanGoBackTo reports whether backward navigation from this step to target
// is allowed: target must be a strictly earlier step and this step must not
// be confirmation.
func (s Step) CanGoBackTo(target Step) bool {
	if s == StepConfirmation {
		return false
	}
	return target.Validate() == nil && target < s
}
