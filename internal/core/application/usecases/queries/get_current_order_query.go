package queries

import (
	"errors"

	"ruburger/internal/pkg/guard"
)

var (
	ErrGetCurrentOrderQueryIsNotConstructed = errors.New(
		"GetCurrentOrderQuery must be created via NewGetCurrentOrderQuery constructor",
	)
)

// GetCurrentOrderQuery retrieves the current draft order with its lines and
// running totals.
//
// Example:
//
//	query := NewGetCurrentOrderQuery()
//	handler := NewGetCurrentOrderQueryHandler(orderManager)
//
//	draft, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get current order: %w", err)
//	}
//
//	fmt.Printf("Order #%d, %d lines, total %s\n",
//	    draft.Number, len(draft.Lines), draft.Total)
type GetCurrentOrderQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCurrentOrderQuery creates a query for the current draft order.
func NewGetCurrentOrderQuery() GetCurrentOrderQuery {
	return GetCurrentOrderQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentOrderQueryIsNotConstructed)
}
