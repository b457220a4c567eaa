package queries

import (
	"ruburger/internal/core/domain/model/order"
)

// LineResponse represents a single order line in a query result.
// Description is the canonical rendering of the line's item, including
// selections, quantity, and extended price.
type LineResponse struct {
	ID          string
	Description string
}

// OrderResponse represents an order in a query result. Monetary values are
// pre-rendered as dollar strings; Tax and Total are rounded half-up to cents
// at this boundary only.
//
// Example:
//
//	resp := queries.NewOrderResponse(o)
//	fmt.Printf("Order #%d: %s\n", resp.Number, resp.Total)
type OrderResponse struct {
	Number   int
	Status   string
	Lines    []LineResponse
	Subtotal string
	Tax      string
	Total    string
}

// NewOrderResponse maps an order aggregate to its query representation.
func NewOrderResponse(o *order.Order) OrderResponse {
	orderLines := o.Lines()
	lines := make([]LineResponse, 0, len(orderLines))
	for _, line := range orderLines {
		lines = append(lines, LineResponse{
			ID:          line.ID().String(),
			Description: line.Item().Describe(),
		})
	}

	return OrderResponse{
		Number:   o.Number(),
		Status:   o.Status().String(),
		Lines:    lines,
		Subtotal: o.Subtotal().String(),
		Tax:      o.Tax().String(),
		Total:    o.Total().String(),
	}
}
