package queries

import (
	"context"

	"ruburger/internal/core/domain/services"
)

// GetCurrentOrderQueryHandler reads the current draft order from the order manager.
type GetCurrentOrderQueryHandler struct {
	orderManager *services.OrderManager
}

// NewGetCurrentOrderQueryHandler creates a handler backed by the given order manager.
func NewGetCurrentOrderQueryHandler(orderManager *services.OrderManager) GetCurrentOrderQueryHandler {
	return GetCurrentOrderQueryHandler{orderManager: orderManager}
}

// Handle returns the current draft order with derived subtotal, tax, and total.
// An order with no lines is a valid result; the draft always exists.
func (h GetCurrentOrderQueryHandler) Handle(
	_ context.Context,
	query GetCurrentOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(h.orderManager.GetCurrentOrder()), nil
}
