package move

import (
	"errors"
	"fmt"
)

// Status represents the lifecycle state of a move.
// It implements a forward-only state machine matching a single mover's
// physical progression through pickup, transit, and drop-off.
//
// State transitions:
//
//	accepted ───────┐
//	                ├──> mover_en_route ──> mover_arrived ──> loading
//	mover_assigned ─┘                                            │
//	                                                             v
//	     completed <── arrived_destination <── in_transit <──────┘
//
// completed is terminal, as are the cancellation states reached from
// earlier stages outside this pipeline. Status values are persisted
// verbatim as strings.
type Status string

const (
	// StatusAccepted is the initial status set at booking/checkout time.
	StatusAccepted Status = "accepted"

	// StatusMoverAssigned indicates a mover profile has been attached to
	// the move but the mover has not started travelling yet.
	StatusMoverAssigned Status = "mover_assigned"

	// StatusMoverEnRoute indicates the mover is travelling to the pickup
	// address.
	StatusMoverEnRoute Status = "mover_en_route"

	// StatusMoverArrived indicates the mover has reached the pickup address.
	StatusMoverArrived Status = "mover_arrived"

	// StatusLoading indicates the inventory is being loaded.
	StatusLoading Status = "loading"

	// StatusInTransit indicates the load is on its way to the destination.
	StatusInTransit Status = "in_transit"

	// StatusArrivedDestination indicates the mover has reached the
	// destination address.
	StatusArrivedDestination Status = "arrived_destination"

	// StatusCompleted is the terminal success state.
	StatusCompleted Status = "completed"

	// StatusCancelledByClient is a terminal state set by cancellation flows
	// outside the forward pipeline.
	StatusCancelledByClient Status = "cancelled_by_client"

	// StatusCancelledByMover is a terminal state set by cancellation flows
	// outside the forward pipeline.
	StatusCancelledByMover Status = "cancelled_by_mover"
)

// ErrInvalidTransition is the sentinel wrapped by InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError is returned when a requested status is not a legal
// next state for the move's current status. It names both statuses so the
// caller can re-fetch state and decide; the request is never retried as-is.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %q to %q", string(e.From), string(e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// validTransitions lists every allowed (current -> next) pair of the forward
// pipeline. Every entry's allowed set has cardinality 1 today; the
// representation stays set-valued so a future branching stage does not change
// the contract. Terminal states have no entry.
func validTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusAccepted:           {StatusMoverEnRoute},
		StatusMoverAssigned:      {StatusMoverEnRoute},
		StatusMoverEnRoute:       {StatusMoverArrived},
		StatusMoverArrived:       {StatusLoading},
		StatusLoading:            {StatusInTransit},
		StatusInTransit:          {StatusArrivedDestination},
		StatusArrivedDestination: {StatusCompleted},
	}
}

// validStatuses returns the full status vocabulary for validation.
func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusAccepted:           {},
		StatusMoverAssigned:      {},
		StatusMoverEnRoute:       {},
		StatusMoverArrived:       {},
		StatusLoading:            {},
		StatusInTransit:          {},
		StatusArrivedDestination: {},
		StatusCompleted:          {},
		StatusCancelledByClient:  {},
		StatusCancelledByMover:   {},
	}
}

// ParseStatus converts a raw string to a Status, returning an error for
// values outside the fixed vocabulary.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

// Validate checks that the Status belongs to the fixed vocabulary.
// The empty string and any other value are invalid.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return fmt.Errorf("%w: %q is not a valid move status", ErrInvalidTransition, string(s))
	}
	return nil
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelledByClient, StatusCancelledByMover:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether requested is a legal next state for s.
func (s Status) CanTransitionTo(requested Status) bool {
	for _, next := range validTransitions()[s] {
		if next == requested {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a forward transition, returning the new
// status. Requests from a terminal state, skipping stages, or moving backward
// all fail with an InvalidTransitionError naming both statuses.
func (s Status) TransitionTo(requested Status) (Status, error) {
	if !s.CanTransitionTo(requested) {
		return "", &InvalidTransitionError{From: s, To: requested}
	}
	return requested, nil
}

// String returns the persisted wire form of the status.
func (s Status) String() string {
	return string(s)
}
