package order

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of a placed order.
// It implements a state machine the staff dashboard walks to progress an
// order from placement to delivery.
//
// State transitions:
//
//	pending ──> confirmed ──> preparing ──> ready ──> out_for_delivery ──> delivered
//	   │            ▲ │           │           │              │
//	   └────────────┼─┴───────────┴───────────┴──────────────┴──> cancelled
//	                └──────────────────────────────────────────────────┘
//	                        (re-activation from cancelled)
//
// delivered is terminal. cancelled can only be re-activated back to confirmed.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly placed order,
	// waiting for staff confirmation.
	StatusPending

	// StatusConfirmed indicates staff accepted the order.
	StatusConfirmed

	// StatusPreparing indicates the kitchen is working on the order.
	StatusPreparing

	// StatusReady indicates the order is packed and waiting for a driver.
	StatusReady

	// StatusOutForDelivery indicates the order left with a driver.
	StatusOutForDelivery

	// StatusDelivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	StatusDelivered

	// StatusCancelled indicates the order was called off.
	// The only way out is re-activation back to StatusConfirmed.
	StatusCancelled
)

// ErrInvalidTransition is the sentinel error for illegal status transitions.
var ErrInvalidTransition = errors.New("invalid order status transition")

// InvalidTransitionError reports an attempted transition absent from the
// legal transition table. The order it was attempted on is left unchanged.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusPending:        "pending",
		StatusConfirmed:      "confirmed",
		StatusPreparing:      "preparing",
		StatusReady:          "ready",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// getTransitionTable returns the complete legal transition graph.
// No transition outside this table is permitted.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:        {StatusConfirmed, StatusCancelled},
		StatusConfirmed:      {StatusPreparing, StatusCancelled},
		StatusPreparing:      {StatusReady, StatusCancelled},
		StatusReady:          {StatusOutForDelivery, StatusCancelled},
		StatusOutForDelivery: {StatusDelivered, StatusCancelled},
		StatusDelivered:      {},
		// Re-activation: a cancelled order can be resurrected by staff.
		StatusCancelled: {StatusConfirmed},
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// String returns the snake_case wire name of the status.
// Implements the fmt.Stringer interface; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getTransitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// AllowedTransitions returns the set of statuses this status may move to.
// The staff UI renders exactly this set in its status-update control, so an
// admin is never offered an illegal transition.
func (s Status) AllowedTransitions() []Status {
	targets := getTransitionTable()[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// CanTransitionTo reports whether moving to next is legal from this status.
func (s Status) CanTransitionTo(next Status) bool {
	for _, target := range getTransitionTable()[s] {
		if target == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition.
//
// Returns:
//   - (next, nil) when the move is in the legal table
//   - (StatusUnknown, *InvalidTransitionError) otherwise
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(next) {
		return StatusUnknown, NewInvalidTransitionError(s, next)
	}
	return next, nil
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return len(getTransitionTable()[s]) == 0
}
