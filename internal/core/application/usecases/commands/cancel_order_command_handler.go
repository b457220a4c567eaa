package commands

import (
	"context"

	"ruburger/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels a placed order and removes it from history.
type CancelOrderCommandHandler struct {
	orderManager *services.OrderManager
}

// NewCancelOrderCommandHandler creates a handler backed by the given order manager.
func NewCancelOrderCommandHandler(orderManager *services.OrderManager) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{orderManager: orderManager}
}

// Handle cancels the placed order carrying the command's number.
// Cancelling a number that is not in history is a no-op.
func (h CancelOrderCommandHandler) Handle(_ context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orderManager.CancelOrderByNumber(cmd.Number())
}
