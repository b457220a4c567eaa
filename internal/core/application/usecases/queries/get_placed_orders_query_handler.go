package queries

import (
	"context"

	"ruburger/internal/core/domain/services"
)

// GetPlacedOrdersQueryHandler reads the placed-order history from the order manager.
type GetPlacedOrdersQueryHandler struct {
	orderManager *services.OrderManager
}

// NewGetPlacedOrdersQueryHandler creates a handler backed by the given order manager.
func NewGetPlacedOrdersQueryHandler(orderManager *services.OrderManager) GetPlacedOrdersQueryHandler {
	return GetPlacedOrdersQueryHandler{orderManager: orderManager}
}

// Handle returns all placed orders in the order they were placed.
func (h GetPlacedOrdersQueryHandler) Handle(
	_ context.Context,
	query GetPlacedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	placed := h.orderManager.GetPlacedOrders()
	responses := make([]OrderResponse, 0, len(placed))
	for _, o := range placed {
		responses = append(responses, NewOrderResponse(o))
	}

	return responses, nil
}
