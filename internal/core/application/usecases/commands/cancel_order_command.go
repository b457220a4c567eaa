package commands

import (
	"errors"
	"math"

	"ruburger/internal/pkg/errs"
	"ruburger/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a request to cancel a placed order by number.
// Cancelling a number that is not in the placed-order history is a no-op.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	number int

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the placed order with the
// given number. Numbers start at 1.
func NewCancelOrderCommand(number int) (CancelOrderCommand, error) {
	if number < 1 {
		return CancelOrderCommand{}, errs.NewValueIsOutOfRangeError("number", number, 1, math.MaxInt)
	}

	return CancelOrderCommand{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Number returns the order number to cancel.
func (c CancelOrderCommand) Number() int {
	return c.number
}
