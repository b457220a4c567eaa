package commands

import (
	"errors"

	"ruburger/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to finalize the current draft order.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place the current draft.
func NewPlaceOrderCommand() PlaceOrderCommand {
	return PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}
