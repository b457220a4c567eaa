package commands_test

import (
	"testing"

	"ruburger/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCancelOrderCommand(7)
	require.NoError(t, err)
	assert.Equal(t, 7, cmd.Number())
	require.NoError(t, cmd.Validate())
}

func TestNewCancelOrderCommand_InvalidNumber(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(0)
	require.Error(t, err)

	_, err = commands.NewCancelOrderCommand(-3)
	require.Error(t, err)
}

func TestCancelOrderCommand_NotConstructedViaConstructor(t *testing.T) {
	var cmd commands.CancelOrderCommand

	err := cmd.Validate()
	require.Error(t, err)
	assert.Equal(t, commands.ErrCancelOrderCommandIsNotConstructed, err)
}
