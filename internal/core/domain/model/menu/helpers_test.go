package menu_test

import (
	"testing"

	"ruburger/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

// Test helper functions.
func quantityOf(t *testing.T, value int) kernel.Quantity {
	t.Helper()
	qty, err := kernel.NewQuantity(value)
	require.NoError(t, err)
	return qty
}
