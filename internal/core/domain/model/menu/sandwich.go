package menu

import (
	"errors"
	"fmt"
	"strings"

	"ruburger/internal/core/domain/model/kernel"
	"ruburger/internal/pkg/guard"
)

// ErrSandwichIsNotConstructed is returned when a Sandwich was not created through
// the NewSandwich factory method.
var ErrSandwichIsNotConstructed = errors.New("Sandwich must be created via NewSandwich constructor")

// Sandwich base prices by protein.
func getProteinPrices() map[Protein]kernel.Cents {
	return map[Protein]kernel.Cents{
		ProteinRoastBeef: 1099,
		ProteinSalmon:    999,
		ProteinChicken:   899,
	}
}

// Sandwich is a composed sandwich item. Unit price is the protein base price
// plus the surcharges of the selected add-ons. Bread is cosmetic and never
// affects price. The add-on sequence preserves selection order; duplicates are
// priced as-is.
//
// Sandwich follows these invariants:
//   - Bread, protein and quantity must be valid selections
//   - Every add-on must be a defined AddOn value
//   - Instances are immutable after construction
type Sandwich struct {
	bread    Bread
	protein  Protein
	addOns   []AddOn
	quantity kernel.Quantity

	guard guard.ConstructorGuard
}

// NewSandwich creates a Sandwich with the given bread, protein, add-ons and
// quantity. The add-on slice is copied so the item keeps value semantics even
// if the caller reuses its slice.
func NewSandwich(bread Bread, protein Protein, addOns []AddOn, quantity kernel.Quantity) (*Sandwich, error) {
	if err := errors.Join(
		bread.Validate(),
		protein.Validate(),
		validateAddOns(addOns),
		quantity.Validate(),
	); err != nil {
		return nil, err
	}

	copied := make([]AddOn, len(addOns))
	copy(copied, addOns)

	return &Sandwich{
		bread:    bread,
		protein:  protein,
		addOns:   copied,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Sandwich was created via NewSandwich.
func (s *Sandwich) Validate() error {
	if s == nil {
		return ErrSandwichIsNotConstructed
	}
	return s.guard.Validate(ErrSandwichIsNotConstructed)
}

// Bread returns the bread choice.
func (s *Sandwich) Bread() Bread {
	return s.bread
}

// Protein returns the protein choice.
func (s *Sandwich) Protein() Protein {
	return s.protein
}

// AddOns returns the selected add-ons in selection order.
// The returned slice is a copy.
func (s *Sandwich) AddOns() []AddOn {
	copied := make([]AddOn, len(s.addOns))
	copy(copied, s.addOns)
	return copied
}

// Quantity returns the number of units ordered.
func (s *Sandwich) Quantity() kernel.Quantity {
	return s.quantity
}

// UnitPrice returns the protein base price plus all add-on surcharges.
func (s *Sandwich) UnitPrice() kernel.Cents {
	return getProteinPrices()[s.protein].Add(addOnsTotal(s.addOns))
}

// Price returns the total price including the quantity multiplier.
func (s *Sandwich) Price() kernel.Cents {
	return s.UnitPrice().Times(s.quantity.Value())
}

// Describe returns the canonical rendering, e.g.
// "Sandwich, CHICKEN (WHEAT) [LETTUCE, TOMATOES] x1 — $9.59".
// The add-on bracket is omitted entirely when no add-ons were selected.
func (s *Sandwich) Describe() string {
	var sb strings.Builder
	sb.WriteString("Sandwich, ")
	sb.WriteString(s.protein.String())
	sb.WriteString(" (")
	sb.WriteString(s.bread.String())
	sb.WriteString(")")
	writeAddOns(&sb, s.addOns)
	fmt.Fprintf(&sb, " x%d — %s", s.quantity.Value(), s.Price())
	return sb.String()
}

// comboBase marks Sandwich as a valid base for a Combo.
func (s *Sandwich) comboBase() {}
