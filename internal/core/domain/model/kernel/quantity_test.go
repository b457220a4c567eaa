package kernel_test

import (
	"testing"

	"ruburger/internal/core/domain/model/kernel"
	"ruburger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	t.Run("should create quantity of one", func(t *testing.T) {
		qty, err := kernel.NewQuantity(1)

		require.NoError(t, err)
		assert.Equal(t, 1, qty.Value())
		require.NoError(t, qty.Validate())
	})

	t.Run("should create larger quantities", func(t *testing.T) {
		qty, err := kernel.NewQuantity(10)

		require.NoError(t, err)
		assert.Equal(t, 10, qty.Value())
	})

	t.Run("should reject zero", func(t *testing.T) {
		_, err := kernel.NewQuantity(0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative values", func(t *testing.T) {
		_, err := kernel.NewQuantity(-3)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestQuantity_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var qty kernel.Quantity

		err := qty.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestQuantity_IsEqual(t *testing.T) {
	t.Run("equal when values match", func(t *testing.T) {
		a, err := kernel.NewQuantity(2)
		require.NoError(t, err)
		b, err := kernel.NewQuantity(2)
		require.NoError(t, err)
		c, err := kernel.NewQuantity(3)
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
