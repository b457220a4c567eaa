package commands

import (
	"context"

	"ruburger/internal/core/domain/services"
)

// RemoveLineCommandHandler removes a single line from the current draft order by ID.
type RemoveLineCommandHandler struct {
	orderManager *services.OrderManager
}

// NewRemoveLineCommandHandler creates a handler backed by the given order manager.
func NewRemoveLineCommandHandler(orderManager *services.OrderManager) RemoveLineCommandHandler {
	return RemoveLineCommandHandler{orderManager: orderManager}
}

// Handle removes the line identified by the command from the current draft order.
// Removing a line that no longer exists is a no-op.
func (h RemoveLineCommandHandler) Handle(_ context.Context, cmd RemoveLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orderManager.RemoveLineFromCurrentOrder(cmd.LineID())
}
