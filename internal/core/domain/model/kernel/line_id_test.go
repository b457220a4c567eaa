package kernel_test

import (
	"testing"

	"ruburger/internal/core/domain/model/kernel"
	"ruburger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineID(t *testing.T) {
	t.Run("should create valid unique IDs", func(t *testing.T) {
		first := kernel.NewLineID()
		second := kernel.NewLineID()

		require.NoError(t, first.Validate())
		require.NoError(t, second.Validate())
		assert.False(t, first.IsEqual(second))
	})
}

func TestLineIDFromString(t *testing.T) {
	t.Run("should round-trip through string form", func(t *testing.T) {
		original := kernel.NewLineID()

		parsed, err := kernel.LineIDFromString(original.String())

		require.NoError(t, err)
		assert.True(t, original.IsEqual(parsed))
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		_, err := kernel.LineIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLineID_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.LineID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrLineIDIsNotConstructed, err)
	})
}
