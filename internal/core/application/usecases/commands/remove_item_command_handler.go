package commands

import (
	"context"

	"ruburger/internal/core/domain/services"
)

// RemoveItemCommandHandler removes one matching line from the current draft order.
type RemoveItemCommandHandler struct {
	orderManager *services.OrderManager
}

// NewRemoveItemCommandHandler creates a handler backed by the given order manager.
func NewRemoveItemCommandHandler(orderManager *services.OrderManager) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{orderManager: orderManager}
}

// Handle removes one line matching the command's item from the current draft order.
// Removing an item that is not in the draft is a no-op.
func (h RemoveItemCommandHandler) Handle(_ context.Context, cmd RemoveItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orderManager.RemoveItemFromCurrentOrder(cmd.Item())
}
