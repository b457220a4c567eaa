package commands_test

import (
	"testing"

	"ruburger/internal/core/application/usecases/commands"
	"ruburger/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_RemovesOrderFromHistory(t *testing.T) {
	ctx := t.Context()
	manager, err := services.NewOrderManager()
	require.NoError(t, err)

	_, err = manager.AddItemToCurrentOrder(mustBeverage(t))
	require.NoError(t, err)
	require.NoError(t, manager.PlaceCurrentOrder())

	cmd, err := commands.NewCancelOrderCommand(1)
	require.NoError(t, err)

	h := commands.NewCancelOrderCommandHandler(manager)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Empty(t, manager.GetPlacedOrders())
}

func TestCancelOrderCommandHandler_Handle_UnknownNumberIsNoOp(t *testing.T) {
	ctx := t.Context()
	manager, err := services.NewOrderManager()
	require.NoError(t, err)

	_, err = manager.AddItemToCurrentOrder(mustBeverage(t))
	require.NoError(t, err)
	require.NoError(t, manager.PlaceCurrentOrder())

	cmd, err := commands.NewCancelOrderCommand(42)
	require.NoError(t, err)

	h := commands.NewCancelOrderCommandHandler(manager)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Len(t, manager.GetPlacedOrders(), 1)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	manager, err := services.NewOrderManager()
	require.NoError(t, err)

	var cmd commands.CancelOrderCommand

	h := commands.NewCancelOrderCommandHandler(manager)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, commands.ErrCancelOrderCommandIsNotConstructed, err)
}
