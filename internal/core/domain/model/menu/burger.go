package menu

import (
	"errors"
	"fmt"
	"strings"

	"ruburger/internal/core/domain/model/kernel"
	"ruburger/internal/pkg/guard"
)

// ErrBurgerIsNotConstructed is returned when a Burger was not created through
// the NewBurger factory method.
var ErrBurgerIsNotConstructed = errors.New("Burger must be created via NewBurger constructor")

const (
	// burgerSinglePrice is the base price of a single-patty burger.
	burgerSinglePrice kernel.Cents = 699

	// burgerDoubleSurcharge is added for a double patty.
	burgerDoubleSurcharge kernel.Cents = 250
)

// Burger is a burger item. Although a burger is a kind of sandwich on the menu
// board, it shares no pricing with Sandwich: the unit price is its own
// single/double patty base plus add-on surcharges, and the protein is always
// roast beef. It is therefore modeled as a sibling of Sandwich, not a
// specialization.
type Burger struct {
	bread       Bread
	doublePatty bool
	addOns      []AddOn
	quantity    kernel.Quantity

	guard guard.ConstructorGuard
}

// NewBurger creates a Burger with the given bread, patty count, add-ons and
// quantity. Bread is cosmetic and never affects price. The add-on slice is
// copied so the item keeps value semantics.
func NewBurger(bread Bread, doublePatty bool, addOns []AddOn, quantity kernel.Quantity) (*Burger, error) {
	if err := errors.Join(
		bread.Validate(),
		validateAddOns(addOns),
		quantity.Validate(),
	); err != nil {
		return nil, err
	}

	copied := make([]AddOn, len(addOns))
	copy(copied, addOns)

	return &Burger{
		bread:       bread,
		doublePatty: doublePatty,
		addOns:      copied,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Burger was created via NewBurger.
func (b *Burger) Validate() error {
	if b == nil {
		return ErrBurgerIsNotConstructed
	}
	return b.guard.Validate(ErrBurgerIsNotConstructed)
}

// Bread returns the bread choice.
func (b *Burger) Bread() Bread {
	return b.bread
}

// IsDoublePatty reports whether the burger has a double patty.
func (b *Burger) IsDoublePatty() bool {
	return b.doublePatty
}

// Protein returns the burger's protein, which is always roast beef.
func (b *Burger) Protein() Protein {
	return ProteinRoastBeef
}

// AddOns returns the selected add-ons in selection order.
// The returned slice is a copy.
func (b *Burger) AddOns() []AddOn {
	copied := make([]AddOn, len(b.addOns))
	copy(copied, b.addOns)
	return copied
}

// Quantity returns the number of units ordered.
func (b *Burger) Quantity() kernel.Quantity {
	return b.quantity
}

// UnitPrice returns the single/double patty base plus all add-on surcharges.
func (b *Burger) UnitPrice() kernel.Cents {
	price := burgerSinglePrice
	if b.doublePatty {
		price = price.Add(burgerDoubleSurcharge)
	}
	return price.Add(addOnsTotal(b.addOns))
}

// Price returns the total price including the quantity multiplier.
func (b *Burger) Price() kernel.Cents {
	return b.UnitPrice().Times(b.quantity.Value())
}

// Describe returns the canonical rendering, e.g.
// "Burger, single (PRETZEL) [LETTUCE, ONIONS] x1 — $7.59".
func (b *Burger) Describe() string {
	patty := "single"
	if b.doublePatty {
		patty = "double"
	}

	var sb strings.Builder
	sb.WriteString("Burger, ")
	sb.WriteString(patty)
	sb.WriteString(" (")
	sb.WriteString(b.bread.String())
	sb.WriteString(")")
	writeAddOns(&sb, b.addOns)
	fmt.Fprintf(&sb, " x%d — %s", b.quantity.Value(), b.Price())
	return sb.String()
}

// comboBase marks Burger as a valid base for a Combo.
func (b *Burger) comboBase() {}
