package menu

import (
	"errors"
	"fmt"

	"ruburger/internal/core/domain/model/kernel"
	"ruburger/internal/pkg/guard"
)

// ErrSideIsNotConstructed is returned when a Side was not created through
// the NewSide factory method.
var ErrSideIsNotConstructed = errors.New("Side must be created via NewSide constructor")

// Side base prices by type.
func getSideBasePrices() map[SideType]kernel.Cents {
	return map[SideType]kernel.Cents{
		SideTypeChips:       199,
		SideTypeFries:       249,
		SideTypeOnionRings:  329,
		SideTypeAppleSlices: 129,
	}
}

// Size surcharges for sides. Small carries no surcharge.
func getSideSizeSurcharges() map[Size]kernel.Cents {
	return map[Size]kernel.Cents{
		SizeSmall:  0,
		SizeMedium: 50,
		SizeLarge:  100,
	}
}

// Side is a side-dish item. Unit price is the base price of the side type plus
// a size surcharge.
type Side struct {
	sideType SideType
	size     Size
	quantity kernel.Quantity

	guard guard.ConstructorGuard
}

// NewSide creates a Side with the given type, size and quantity.
func NewSide(sideType SideType, size Size, quantity kernel.Quantity) (*Side, error) {
	if err := errors.Join(
		sideType.Validate(),
		size.Validate(),
		quantity.Validate(),
	); err != nil {
		return nil, err
	}

	return &Side{
		sideType: sideType,
		size:     size,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Side was created via NewSide.
func (s *Side) Validate() error {
	if s == nil {
		return ErrSideIsNotConstructed
	}
	return s.guard.Validate(ErrSideIsNotConstructed)
}

// SideType returns the kind of side dish.
func (s *Side) SideType() SideType {
	return s.sideType
}

// Size returns the serving size.
func (s *Side) Size() Size {
	return s.size
}

// Quantity returns the number of units ordered.
func (s *Side) Quantity() kernel.Quantity {
	return s.quantity
}

// UnitPrice returns the base price for the side type plus the size surcharge.
func (s *Side) UnitPrice() kernel.Cents {
	return getSideBasePrices()[s.sideType].Add(getSideSizeSurcharges()[s.size])
}

// Price returns the total price including the quantity multiplier.
func (s *Side) Price() kernel.Cents {
	return s.UnitPrice().Times(s.quantity.Value())
}

// Describe returns the canonical rendering, e.g. "Side x1: [FRIES, MEDIUM] — $2.99".
func (s *Side) Describe() string {
	return fmt.Sprintf("Side x%d: [%s, %s] — %s",
		s.quantity.Value(), s.sideType, s.size, s.Price())
}
