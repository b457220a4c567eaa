package commands

import (
	"errors"

	"ruburger/internal/core/domain/model/kernel"
	"ruburger/internal/pkg/guard"
)

var (
	ErrRemoveLineCommandIsNotConstructed = errors.New(
		"RemoveLineCommand must be created via NewRemoveLineCommand constructor",
	)
)

// RemoveLineCommand represents a request to remove a specific order line,
// identified by the line ID returned when the item was added. Removing a line
// that no longer exists is a no-op.
type RemoveLineCommand struct { //nolint:recvcheck //using for validation
	lineID kernel.LineID

	guard guard.ConstructorGuard
}

// NewRemoveLineCommand creates a command to remove the line with the given ID
// from the current draft.
func NewRemoveLineCommand(lineID kernel.LineID) (RemoveLineCommand, error) {
	if err := lineID.Validate(); err != nil {
		return RemoveLineCommand{}, err
	}

	return RemoveLineCommand{
		lineID: lineID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLineCommandIsNotConstructed)
}

// LineID returns the identifier of the line to remove.
func (c RemoveLineCommand) LineID() kernel.LineID {
	return c.lineID
}
