package commands

import (
	"context"

	"ruburger/internal/core/domain/services"
)

// ExportOrdersCommandHandler writes the placed-order history to a sink in the
// receipt export format.
type ExportOrdersCommandHandler struct {
	orderManager *services.OrderManager
}

// NewExportOrdersCommandHandler creates a handler backed by the given order manager.
func NewExportOrdersCommandHandler(orderManager *services.OrderManager) ExportOrdersCommandHandler {
	return ExportOrdersCommandHandler{orderManager: orderManager}
}

// Handle writes all placed orders to the command's sink.
func (h ExportOrdersCommandHandler) Handle(_ context.Context, cmd ExportOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orderManager.ExportOrders(cmd.Sink())
}
