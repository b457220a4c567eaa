package commands_test

import (
	"bytes"
	"testing"

	"ruburger/internal/core/application/usecases/commands"
	"ruburger/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportOrdersCommandHandler_Handle_WritesPlacedOrders(t *testing.T) {
	ctx := t.Context()
	manager, err := services.NewOrderManager()
	require.NoError(t, err)

	_, err = manager.AddItemToCurrentOrder(mustBeverage(t))
	require.NoError(t, err)
	require.NoError(t, manager.PlaceCurrentOrder())

	var sink bytes.Buffer
	cmd, err := commands.NewExportOrdersCommand(&sink)
	require.NoError(t, err)

	h := commands.NewExportOrdersCommandHandler(manager)
	require.NoError(t, h.Handle(ctx, cmd))

	out := sink.String()
	assert.Contains(t, out, "Order #1")
	assert.Contains(t, out, "Total: $3.19")
}

func TestExportOrdersCommandHandler_Handle_NoPlacedOrdersWritesNothing(t *testing.T) {
	ctx := t.Context()
	manager, err := services.NewOrderManager()
	require.NoError(t, err)

	var sink bytes.Buffer
	cmd, err := commands.NewExportOrdersCommand(&sink)
	require.NoError(t, err)

	h := commands.NewExportOrdersCommandHandler(manager)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Empty(t, sink.String())
}

func TestExportOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	manager, err := services.NewOrderManager()
	require.NoError(t, err)

	var cmd commands.ExportOrdersCommand

	h := commands.NewExportOrdersCommandHandler(manager)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, commands.ErrExportOrdersCommandIsNotConstructed, err)
}
