package order_test

import (
	"errors"
	"strings"
	"testing"

	"ruburger/internal/core/domain/model/kernel"
	"ruburger/internal/core/domain/model/menu"
	"ruburger/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestExport(t *testing.T) {
	t.Run("should render one block per order in placement order", func(t *testing.T) {
		first, err := order.NewOrder(1)
		require.NoError(t, err)
		burger := mustBurger(t)
		_, err = first.AddItem(burger)
		require.NoError(t, err)
		_, err = first.AddItem(createBeverage(t, menu.SizeLarge, menu.FlavorCola, 1))
		require.NoError(t, err)
		require.NoError(t, first.Place())

		second, err := order.NewOrder(2)
		require.NoError(t, err)
		_, err = second.AddItem(createSide(t, menu.SideTypeChips, menu.SizeSmall, 2))
		require.NoError(t, err)
		require.NoError(t, second.Place())

		var sb strings.Builder
		require.NoError(t, order.Export(&sb, []*order.Order{first, second}))

		want := strings.Join([]string{
			"Order #1",
			"- Burger, single (PRETZEL) [LETTUCE, ONIONS] x1 — $7.59",
			"- Beverage x1: [COLA, LARGE] — $2.99",
			"Total: $11.28",
			"====================================",
			"Order #2",
			"- Side x2: [CHIPS, SMALL] — $3.98",
			"Total: $4.24",
			"====================================",
			"",
		}, "\n")
		assert.Equal(t, want, sb.String())
	})

	t.Run("should write nothing for an empty history", func(t *testing.T) {
		var sb strings.Builder

		require.NoError(t, order.Export(&sb, nil))

		assert.Empty(t, sb.String())
	})

	t.Run("should surface sink failures to the caller", func(t *testing.T) {
		o, err := order.NewOrder(1)
		require.NoError(t, err)
		_, err = o.AddItem(createBeverage(t, menu.SizeSmall, menu.FlavorTea, 1))
		require.NoError(t, err)

		err = order.Export(failingWriter{}, []*order.Order{o})

		require.Error(t, err)
		assert.EqualError(t, err, "disk full")
	})

	t.Run("separator is exactly 36 equals signs", func(t *testing.T) {
		o, err := order.NewOrder(1)
		require.NoError(t, err)
		_, err = o.AddItem(createBeverage(t, menu.SizeSmall, menu.FlavorTea, 1))
		require.NoError(t, err)

		var sb strings.Builder
		require.NoError(t, order.Export(&sb, []*order.Order{o}))

		assert.Contains(t, sb.String(), "\n"+strings.Repeat("=", 36)+"\n")
	})
}

func mustBurger(t *testing.T) *menu.Burger {
	t.Helper()
	qty, err := kernel.NewQuantity(1)
	require.NoError(t, err)
	burger, err := menu.NewBurger(menu.BreadPretzel, false,
		[]menu.AddOn{menu.AddOnLettuce, menu.AddOnOnions}, qty)
	require.NoError(t, err)
	return burger
}
