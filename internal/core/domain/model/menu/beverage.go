package menu

import (
	"errors"
	"fmt"

	"ruburger/internal/core/domain/model/kernel"
	"ruburger/internal/pkg/guard"
)

// ErrBeverageIsNotConstructed is returned when a Beverage was not created through
// the NewBeverage factory method.
var ErrBeverageIsNotConstructed = errors.New("Beverage must be created via NewBeverage constructor")

// Beverage unit prices by size. Flavor never affects price.
func getBeveragePrices() map[Size]kernel.Cents {
	return map[Size]kernel.Cents{
		SizeSmall:  199,
		SizeMedium: 249,
		SizeLarge:  299,
	}
}

// Beverage is a drink item. Its price is a pure function of size and quantity.
//
// Example:
//
//	qty, _ := kernel.NewQuantity(1)
//	bev, err := menu.NewBeverage(menu.SizeLarge, menu.FlavorCola, qty)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(bev.Describe()) // Beverage x1: [COLA, LARGE] — $2.99
type Beverage struct {
	size     Size
	flavor   Flavor
	quantity kernel.Quantity

	guard guard.ConstructorGuard
}

// NewBeverage creates a Beverage with the given size, flavor and quantity.
// All three selections are validated; a missing selection is rejected here,
// before the item can ever reach an order.
func NewBeverage(size Size, flavor Flavor, quantity kernel.Quantity) (*Beverage, error) {
	if err := errors.Join(
		size.Validate(),
		flavor.Validate(),
		quantity.Validate(),
	); err != nil {
		return nil, err
	}

	return &Beverage{
		size:     size,
		flavor:   flavor,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Beverage was created via NewBeverage.
func (b *Beverage) Validate() error {
	if b == nil {
		return ErrBeverageIsNotConstructed
	}
	return b.guard.Validate(ErrBeverageIsNotConstructed)
}

// Size returns the serving size.
func (b *Beverage) Size() Size {
	return b.size
}

// Flavor returns the drink flavor.
func (b *Beverage) Flavor() Flavor {
	return b.flavor
}

// Quantity returns the number of units ordered.
func (b *Beverage) Quantity() kernel.Quantity {
	return b.quantity
}

// UnitPrice returns the price of a single beverage of this size.
func (b *Beverage) UnitPrice() kernel.Cents {
	return getBeveragePrices()[b.size]
}

// Price returns the total price including the quantity multiplier.
func (b *Beverage) Price() kernel.Cents {
	return b.UnitPrice().Times(b.quantity.Value())
}

// Describe returns the canonical rendering, e.g. "Beverage x1: [COLA, LARGE] — $2.99".
func (b *Beverage) Describe() string {
	return fmt.Sprintf("Beverage x%d: [%s, %s] — %s",
		b.quantity.Value(), b.flavor, b.size, b.Price())
}
