package commands

import (
	"context"

	"ruburger/internal/core/domain/services"
)

// PlaceOrderCommandHandler finalizes the current draft order. An empty draft
// is left untouched and no order number is consumed.
type PlaceOrderCommandHandler struct {
	orderManager *services.OrderManager
}

// NewPlaceOrderCommandHandler creates a handler backed by the given order manager.
func NewPlaceOrderCommandHandler(orderManager *services.OrderManager) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{orderManager: orderManager}
}

// Handle places the current draft order and starts a fresh draft.
func (h PlaceOrderCommandHandler) Handle(_ context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orderManager.PlaceCurrentOrder()
}
