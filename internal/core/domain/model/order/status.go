package order

import (
	"fmt"

	"ruburger/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Draft ──> Placed ──> Cancelled
//
// A placed order is either retained in history or cancelled; there is no
// transition back to Draft.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status: the order is the manager's current draft
	// and its items are mutable.
	Draft

	// Placed indicates the order has been finalized and transferred to
	// history. Its items are treated as read-only.
	Placed

	// Cancelled indicates the order was removed from history.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Placed:    "Placed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Placed:    "Placed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Draft, Placed, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateMutate checks whether the order's items may still change.
// Only draft orders are mutable.
func (s Status) ValidateMutate() error {
	if s != Draft {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to mutate items", s.String()),
		)
	}
	return nil
}

// Place transitions the status to Placed.
//
// Valid transitions:
//   - Draft -> Placed (order finalized)
//
// Returns:
//   - (Placed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Place() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to place", s.String()),
		)
	}

	return Placed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Placed -> Cancelled (order removed from history)
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Cancel() (Status, error) {
	if s != Placed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
