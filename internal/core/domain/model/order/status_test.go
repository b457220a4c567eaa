package order_test

import (
	"testing"

	"ruburger/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		require.NoError(t, order.Draft.Validate())
		require.NoError(t, order.Placed.Validate())
		require.NoError(t, order.Cancelled.Validate())
	})

	t.Run("unknown fails", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Draft", order.Draft.String())
	assert.Equal(t, "Placed", order.Placed.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatus_Place(t *testing.T) {
	t.Run("draft can be placed", func(t *testing.T) {
		next, err := order.Draft.Place()

		require.NoError(t, err)
		assert.Equal(t, order.Placed, next)
	})

	t.Run("placed cannot be placed again", func(t *testing.T) {
		_, err := order.Placed.Place()
		require.Error(t, err)
	})

	t.Run("cancelled cannot be placed", func(t *testing.T) {
		_, err := order.Cancelled.Place()
		require.Error(t, err)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("placed can be cancelled", func(t *testing.T) {
		next, err := order.Placed.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	})

	t.Run("draft cannot be cancelled", func(t *testing.T) {
		_, err := order.Draft.Cancel()
		require.Error(t, err)
	})

	t.Run("there is no way back from cancelled", func(t *testing.T) {
		_, err := order.Cancelled.Cancel()
		require.Error(t, err)
		_, err = order.Cancelled.Place()
		require.Error(t, err)
	})
}

func TestStatus_ValidateMutate(t *testing.T) {
	require.NoError(t, order.Draft.ValidateMutate())
	require.Error(t, order.Placed.ValidateMutate())
	require.Error(t, order.Cancelled.ValidateMutate())
}
