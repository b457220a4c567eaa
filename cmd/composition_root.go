package cmd

import (
	"log/slog"

	"ruburger/internal/adapters/in/http"
	"ruburger/internal/core/application/usecases/commands"
	"ruburger/internal/core/application/usecases/queries"
	"ruburger/internal/core/domain/services"
	"ruburger/internal/jobs"
)

type CompositionRoot struct {
	config       Config
	orderManager *services.OrderManager
	logger       *slog.Logger
}

// NewCompositionRoot wires the application object graph. The order manager is
// constructed exactly once here; every handler shares it.
func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	orderManager, err := services.NewOrderManager()
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:       config,
		orderManager: orderManager,
		logger:       logger,
	}, nil
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.orderManager)
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	return commands.NewRemoveItemCommandHandler(c.orderManager)
}

func (c *CompositionRoot) CreateRemoveLineCommandHandler() commands.RemoveLineCommandHandler {
	return commands.NewRemoveLineCommandHandler(c.orderManager)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderManager)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderManager)
}

func (c *CompositionRoot) CreateExportOrdersCommandHandler() commands.ExportOrdersCommandHandler {
	return commands.NewExportOrdersCommandHandler(c.orderManager)
}

func (c *CompositionRoot) CreateGetCurrentOrderQueryHandler() queries.GetCurrentOrderQueryHandler {
	return queries.NewGetCurrentOrderQueryHandler(c.orderManager)
}

func (c *CompositionRoot) CreateGetPlacedOrdersQueryHandler() queries.GetPlacedOrdersQueryHandler {
	return queries.NewGetPlacedOrdersQueryHandler(c.orderManager)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateAddItemCommandHandler(),
		c.CreateRemoveLineCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateExportOrdersCommandHandler(),
		c.CreateGetCurrentOrderQueryHandler(),
		c.CreateGetPlacedOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExportOrdersCommandHandler(),
		c.config.ExportFilePath,
		c.config.ExportSchedule,
		c.logger,
	)
}
