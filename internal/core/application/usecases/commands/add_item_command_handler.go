package commands

import (
	"context"

	"ruburger/internal/core/domain/model/kernel"
	"ruburger/internal/core/domain/services"
)

// AddItemCommandHandler appends a menu item to the current draft order and
// reports the identifier of the resulting order line.
type AddItemCommandHandler struct {
	orderManager *services.OrderManager
}

// NewAddItemCommandHandler creates a handler backed by the given order manager.
func NewAddItemCommandHandler(orderManager *services.OrderManager) AddItemCommandHandler {
	return AddItemCommandHandler{orderManager: orderManager}
}

// Handle adds the command's item to the current draft order.
// Returns the ID of the new order line for later targeted removal.
func (h AddItemCommandHandler) Handle(_ context.Context, cmd AddItemCommand) (kernel.LineID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.LineID{}, err
	}

	return h.orderManager.AddItemToCurrentOrder(cmd.Item())
}
