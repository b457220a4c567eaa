package menu

import (
	"errors"
	"fmt"

	"ruburger/internal/core/domain/model/kernel"
	"ruburger/internal/pkg/errs"
	"ruburger/internal/pkg/guard"
)

// ErrComboIsNotConstructed is returned when a Combo was not created through
// the NewCombo factory method.
var ErrComboIsNotConstructed = errors.New("Combo must be created via NewCombo constructor")

// comboFee is the flat per-unit fee added to the base sandwich unit price.
const comboFee kernel.Cents = 200

// ComboBase is a menu item that can anchor a combo meal: a Sandwich or a Burger.
type ComboBase interface {
	MenuItem
	comboBase()
}

// Combo bundles a sandwich or burger with a drink and a side at the base item's
// unit price plus a flat fee. The bundled side and drink carry no separate
// price.
//
// The unit price is computed from the base item's unit price, not its total:
// a base with its own quantity greater than one contributes only one unit's
// worth per combo. The total is then the unit price times the combo quantity.
type Combo struct {
	base     ComboBase
	flavor   Flavor
	sideType SideType
	quantity kernel.Quantity

	guard guard.ConstructorGuard
}

// NewCombo creates a Combo around the given base item with the chosen drink
// flavor, side type and quantity. The base must be a constructed Sandwich or
// Burger; items are immutable after construction, so holding the base directly
// preserves capture-by-value semantics.
func NewCombo(base ComboBase, flavor Flavor, sideType SideType, quantity kernel.Quantity) (*Combo, error) {
	if base == nil {
		return nil, errs.NewValueIsRequiredError("combo base")
	}

	if err := errors.Join(
		base.Validate(),
		flavor.Validate(),
		sideType.Validate(),
		quantity.Validate(),
	); err != nil {
		return nil, err
	}

	return &Combo{
		base:     base,
		flavor:   flavor,
		sideType: sideType,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Combo was created via NewCombo.
func (c *Combo) Validate() error {
	if c == nil {
		return ErrComboIsNotConstructed
	}
	return c.guard.Validate(ErrComboIsNotConstructed)
}

// Base returns the bundled sandwich or burger.
func (c *Combo) Base() ComboBase {
	return c.base
}

// Flavor returns the bundled drink flavor.
func (c *Combo) Flavor() Flavor {
	return c.flavor
}

// SideType returns the bundled side type.
func (c *Combo) SideType() SideType {
	return c.sideType
}

// Quantity returns the number of combos ordered.
func (c *Combo) Quantity() kernel.Quantity {
	return c.quantity
}

// UnitPrice returns the base item's unit price plus the flat combo fee.
func (c *Combo) UnitPrice() kernel.Cents {
	return c.base.UnitPrice().Add(comboFee)
}

// Price returns the total price including the quantity multiplier.
func (c *Combo) Price() kernel.Cents {
	return c.UnitPrice().Times(c.quantity.Value())
}

// Describe returns the canonical rendering, e.g.
// "Combo x1: [Burger, single (BRIOCHE) x1 — $6.99], Side: FRIES, Drink: COLA — $8.99".
func (c *Combo) Describe() string {
	return fmt.Sprintf("Combo x%d: [%s], Side: %s, Drink: %s — %s",
		c.quantity.Value(), c.base.Describe(), c.sideType, c.flavor, c.Price())
}
