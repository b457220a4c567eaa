package commands

import (
	"errors"

	"ruburger/internal/core/domain/model/menu"
	"ruburger/internal/pkg/errs"
	"ruburger/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
)

// AddItemCommand represents a request to add a menu item to the current draft
// order. The item is constructed by the calling adapter from user selections
// and validated before the command is accepted.
//
// Example:
//
//	item, _ := menu.NewBeverage(menu.SizeLarge, menu.FlavorCola, qty)
//	cmd, err := commands.NewAddItemCommand(item)
//	if err != nil {
//	    return fmt.Errorf("invalid selection: %w", err)
//	}
//
//	lineID, err := handler.Handle(ctx, cmd)
type AddItemCommand struct { //nolint:recvcheck //using for validation
	item menu.MenuItem

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add the given item to the current draft.
// The item must be non-nil and properly constructed.
func NewAddItemCommand(item menu.MenuItem) (AddItemCommand, error) {
	if item == nil {
		return AddItemCommand{}, errs.NewValueIsRequiredError("item")
	}

	if err := item.Validate(); err != nil {
		return AddItemCommand{}, err
	}

	return AddItemCommand{
		item:  item,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// Item returns the menu item to add.
func (c AddItemCommand) Item() menu.MenuItem {
	return c.item
}
