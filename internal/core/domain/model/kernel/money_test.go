package kernel_test

import (
	"testing"

	"ruburger/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestCents(t *testing.T) {
	t.Run("should multiply by quantity exactly", func(t *testing.T) {
		assert.Equal(t, kernel.Cents(2158), kernel.Cents(1079).Times(2))
		assert.Equal(t, kernel.Cents(759), kernel.Cents(759).Times(1))
	})

	t.Run("should add amounts", func(t *testing.T) {
		assert.Equal(t, kernel.Cents(598), kernel.Cents(299).Add(kernel.Cents(299)))
	})

	t.Run("should convert to dollars", func(t *testing.T) {
		assert.InDelta(t, 7.59, kernel.Cents(759).Dollars(), 1e-9)
	})

	t.Run("should format with exactly two decimals", func(t *testing.T) {
		assert.Equal(t, "$7.59", kernel.Cents(759).String())
		assert.Equal(t, "$0.00", kernel.Cents(0).String())
		assert.Equal(t, "$2.05", kernel.Cents(205).String())
		assert.Equal(t, "$10.00", kernel.Cents(1000).String())
	})
}

func TestAmount(t *testing.T) {
	t.Run("should carry the tax rate exactly", func(t *testing.T) {
		// $5.98 subtotal at 6.625% is $0.39617500 of tax.
		tax := kernel.Cents(598).ApplyRate(6625)
		assert.InDelta(t, 0.396175, tax.Dollars(), 1e-9)
	})

	t.Run("should keep total equal to subtotal plus tax", func(t *testing.T) {
		subtotal := kernel.Cents(598)
		tax := subtotal.ApplyRate(6625)
		total := subtotal.Amount().Add(tax)

		assert.InDelta(t, subtotal.Dollars()+tax.Dollars(), total.Dollars(), 1e-9)
		assert.InDelta(t, 6.376175, total.Dollars(), 1e-9)
	})

	t.Run("should round half-up to cents when formatted", func(t *testing.T) {
		subtotal := kernel.Cents(598)
		total := subtotal.Amount().Add(subtotal.ApplyRate(6625))

		// 6.376175 rounds to $6.38.
		assert.Equal(t, "$6.38", total.String())
		assert.Equal(t, kernel.Cents(638), total.Round())
	})

	t.Run("should round an exact cent boundary without drift", func(t *testing.T) {
		assert.Equal(t, "$5.98", kernel.Cents(598).Amount().String())
	})
}
