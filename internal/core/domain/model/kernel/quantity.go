package kernel

import (
	"fmt"

	"ruburger/internal/pkg/errs"
	"ruburger/internal/pkg/guard"
)

// MinQuantity is the smallest quantity a menu item can be ordered with.
const MinQuantity = 1

// ErrQuantityIsNotConstructed is returned when validating a zero-value Quantity.
// Quantities must be created via NewQuantity to guarantee they are at least MinQuantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"quantity must be created via NewQuantity constructor")

// Quantity is an immutable value object for the number of units of a menu item.
// The zero value is invalid; use NewQuantity.
//
// Example:
//
//	qty, err := kernel.NewQuantity(2)
//	if err != nil {
//	    // Handle validation error
//	}
type Quantity struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

// NewQuantity creates a Quantity of at least MinQuantity units.
// Returns an error if value is below MinQuantity.
func NewQuantity(value int) (Quantity, error) {
	if value < MinQuantity {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than %d", value, MinQuantity))
	}

	return Quantity{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Quantity was created via NewQuantity.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Value returns the number of units.
func (q Quantity) Value() int {
	return q.value
}

// IsEqual compares two quantities by value.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}
