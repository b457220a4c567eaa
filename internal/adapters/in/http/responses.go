package http

import (
	"ruburger/internal/core/application/usecases/queries"
)

// Error is the JSON body returned on request failures.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Line represents a single order line in API responses.
type Line struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Order represents an order in API responses. Monetary fields are dollar
// strings rounded to cents.
type Order struct {
	Number   int    `json:"number"`
	Status   string `json:"status"`
	Lines    []Line `json:"lines"`
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// AddedLine reports the line created by a successful add-item request.
type AddedLine struct {
	LineID string `json:"lineId"`
}

func toOrderResponse(src queries.OrderResponse) Order {
	lines := make([]Line, len(src.Lines))
	for i, line := range src.Lines {
		lines[i] = Line{
			ID:          line.ID,
			Description: line.Description,
		}
	}

	return Order{
		Number:   src.Number,
		Status:   src.Status,
		Lines:    lines,
		Subtotal: src.Subtotal,
		Tax:      src.Tax,
		Total:    src.Total,
	}
}
