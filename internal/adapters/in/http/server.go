package http

import (
	"bytes"
	"net/http"
	"strconv"

	"ruburger/internal/core/application/usecases/commands"
	"ruburger/internal/core/application/usecases/queries"
	"ruburger/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for order composition.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addItemHandler      commands.AddItemCommandHandler
	removeLineHandler   commands.RemoveLineCommandHandler
	placeOrderHandler   commands.PlaceOrderCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler
	exportOrdersHandler commands.ExportOrdersCommandHandler

	// Query handlers
	getCurrentOrderHandler queries.GetCurrentOrderQueryHandler
	getPlacedOrdersHandler queries.GetPlacedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addItemHandler commands.AddItemCommandHandler,
	removeLineHandler commands.RemoveLineCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	exportOrdersHandler commands.ExportOrdersCommandHandler,
	getCurrentOrderHandler queries.GetCurrentOrderQueryHandler,
	getPlacedOrdersHandler queries.GetPlacedOrdersQueryHandler,
) *Server {
	return &Server{
		addItemHandler:         addItemHandler,
		removeLineHandler:      removeLineHandler,
		placeOrderHandler:      placeOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		exportOrdersHandler:    exportOrdersHandler,
		getCurrentOrderHandler: getCurrentOrderHandler,
		getPlacedOrdersHandler: getPlacedOrdersHandler,
	}
}

// RegisterRoutes attaches the server's handlers to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/api/v1/orders/current", s.GetCurrentOrder)
	e.POST("/api/v1/orders/current/items", s.AddItem)
	e.DELETE("/api/v1/orders/current/items/:lineId", s.RemoveLine)
	e.POST("/api/v1/orders", s.PlaceOrder)
	e.GET("/api/v1/orders", s.GetOrders)
	e.DELETE("/api/v1/orders/:number", s.CancelOrder)
	e.GET("/api/v1/orders/export", s.ExportOrders)
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetCurrentOrder handles GET /api/v1/orders/current - retrieves the draft order.
func (s *Server) GetCurrentOrder(ctx echo.Context) error {
	query := queries.NewGetCurrentOrderQuery()

	draft, err := s.getCurrentOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve current order",
		})
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(draft))
}

// AddItem handles POST /api/v1/orders/current/items - adds an item to the draft.
func (s *Server) AddItem(ctx echo.Context) error {
	var req AddItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	item, err := req.ToMenuItem()
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item selection: " + err.Error(),
		})
	}

	cmd, err := commands.NewAddItemCommand(item)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item selection: " + err.Error(),
		})
	}

	lineID, err := s.addItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to add item",
		})
	}

	return ctx.JSON(http.StatusCreated, AddedLine{LineID: lineID.String()})
}

// RemoveLine handles DELETE /api/v1/orders/current/items/:lineId - removes a
// line from the draft. Removing a line that no longer exists still returns 204.
func (s *Server) RemoveLine(ctx echo.Context) error {
	lineID, err := kernel.LineIDFromString(ctx.Param("lineId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid line ID",
		})
	}

	cmd, err := commands.NewRemoveLineCommand(lineID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid line ID",
		})
	}

	if handleErr := s.removeLineHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to remove line",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders - places the current draft.
// Placing an empty draft is rejected before it reaches the order manager.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	draft, err := s.getCurrentOrderHandler.Handle(
		ctx.Request().Context(), queries.NewGetCurrentOrderQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve current order",
		})
	}

	if len(draft.Lines) == 0 {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "Cannot place an empty order",
		})
	}

	cmd := commands.NewPlaceOrderCommand()
	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place order",
		})
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(draft))
}

// GetOrders handles GET /api/v1/orders - retrieves all placed orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetPlacedOrdersQuery()

	orders, err := s.getPlacedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]Order, len(orders))
	for i, order := range orders {
		response[i] = toOrderResponse(order)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles DELETE /api/v1/orders/:number - cancels a placed order.
// Cancelling a number that is not in history still returns 204.
func (s *Server) CancelOrder(ctx echo.Context) error {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(number)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number",
		})
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to cancel order",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ExportOrders handles GET /api/v1/orders/export - streams the receipt-style
// export of all placed orders as plain text.
func (s *Server) ExportOrders(ctx echo.Context) error {
	var sink bytes.Buffer
	cmd, err := commands.NewExportOrdersCommand(&sink)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to export orders",
		})
	}

	if handleErr := s.exportOrdersHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to export orders",
		})
	}

	return ctx.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, sink.Bytes())
}
