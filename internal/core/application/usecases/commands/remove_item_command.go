package commands

import (
	"errors"

	"ruburger/internal/core/domain/model/menu"
	"ruburger/internal/pkg/errs"
	"ruburger/internal/pkg/guard"
)

var (
	ErrRemoveItemCommandIsNotConstructed = errors.New(
		"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
	)
)

// RemoveItemCommand represents a request to remove one line matching the given
// item from the current draft order. Matching is structural: any line whose
// item describes identically qualifies. Removing an item that is not present
// is a no-op.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	item menu.MenuItem

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove the given item from the
// current draft.
func NewRemoveItemCommand(item menu.MenuItem) (RemoveItemCommand, error) {
	if item == nil {
		return RemoveItemCommand{}, errs.NewValueIsRequiredError("item")
	}

	if err := item.Validate(); err != nil {
		return RemoveItemCommand{}, err
	}

	return RemoveItemCommand{
		item:  item,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// Item returns the menu item to remove.
func (c RemoveItemCommand) Item() menu.MenuItem {
	return c.item
}
