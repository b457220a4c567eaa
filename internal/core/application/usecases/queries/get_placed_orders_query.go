package queries

import (
	"errors"

	"ruburger/internal/pkg/guard"
)

var (
	ErrGetPlacedOrdersQueryIsNotConstructed = errors.New(
		"GetPlacedOrdersQuery must be created via NewGetPlacedOrdersQuery constructor",
	)
)

// GetPlacedOrdersQuery retrieves all placed orders in placement sequence.
//
// Example:
//
//	query := NewGetPlacedOrdersQuery()
//	handler := NewGetPlacedOrdersQueryHandler(orderManager)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get placed orders: %w", err)
//	}
//
//	fmt.Printf("%d orders placed\n", len(orders))
type GetPlacedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPlacedOrdersQuery creates a query for the placed-order history.
func NewGetPlacedOrdersQuery() GetPlacedOrdersQuery {
	return GetPlacedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPlacedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPlacedOrdersQueryIsNotConstructed)
}
