package menu

import (
	"strings"

	"ruburger/internal/core/domain/model/kernel"
)

// MenuItem is implemented by every orderable item kind: Beverage, Side,
// Sandwich, Burger, and Combo. Items are immutable once constructed and carry
// value semantics: adapters build a fresh item for every selection.
type MenuItem interface {
	// Validate ensures the item was created through its constructor.
	Validate() error

	// UnitPrice returns the price of a single unit, excluding the quantity multiplier.
	UnitPrice() kernel.Cents

	// Price returns the total price for the item including its quantity multiplier.
	Price() kernel.Cents

	// Quantity returns the number of units ordered.
	Quantity() kernel.Quantity

	// Describe returns the canonical single-line rendering of the item,
	// e.g. "Burger, single (PRETZEL) [LETTUCE, ONIONS] x1 — $7.59".
	Describe() string
}

// IsEqual reports whether two items are structurally equal. The canonical
// rendering covers every attribute including quantity and the derived price,
// so comparing renderings is comparing the full attribute set. Removal
// operations use this to match items rebuilt by adapters against stored ones.
func IsEqual(a, b MenuItem) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Describe() == b.Describe()
}

// addOnsTotal sums the surcharges of a sequence of add-ons.
// Duplicates are counted as-is.
func addOnsTotal(addOns []AddOn) kernel.Cents {
	var total kernel.Cents
	for _, addOn := range addOns {
		total = total.Add(addOn.Price())
	}
	return total
}

// writeAddOns appends the bracketed add-on list to a rendering.
// The bracket is omitted entirely when the sequence is empty.
func writeAddOns(sb *strings.Builder, addOns []AddOn) {
	if len(addOns) == 0 {
		return
	}

	sb.WriteString(" [")
	for i, addOn := range addOns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(addOn.String())
	}
	sb.WriteString("]")
}

// validateAddOns checks every add-on in the sequence.
func validateAddOns(addOns []AddOn) error {
	for _, addOn := range addOns {
		if err := addOn.Validate(); err != nil {
			return err
		}
	}
	return nil
}
