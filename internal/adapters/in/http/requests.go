package http

import (
	"ruburger/internal/core/domain/model/kernel"
	"ruburger/internal/core/domain/model/menu"
	"ruburger/internal/pkg/errs"
)

// Item kinds accepted by the add-item endpoint.
const (
	kindBeverage = "BEVERAGE"
	kindSide     = "SIDE"
	kindSandwich = "SANDWICH"
	kindBurger   = "BURGER"
	kindCombo    = "COMBO"
)

// AddItemRequest describes a menu item to add to the current draft order.
// Kind selects the item family; the remaining fields apply per kind:
//
//   - BEVERAGE: size, flavor
//   - SIDE:     sideType, size
//   - SANDWICH: bread, protein, addOns
//   - BURGER:   bread, doublePatty, addOns
//   - COMBO:    base (a SANDWICH or BURGER request), flavor, sideType
//
// Quantity applies to every kind and must be at least 1.
type AddItemRequest struct {
	Kind        string          `json:"kind"`
	Quantity    int             `json:"quantity"`
	Size        string          `json:"size,omitempty"`
	Flavor      string          `json:"flavor,omitempty"`
	SideType    string          `json:"sideType,omitempty"`
	Bread       string          `json:"bread,omitempty"`
	Protein     string          `json:"protein,omitempty"`
	AddOns      []string        `json:"addOns,omitempty"`
	DoublePatty bool            `json:"doublePatty,omitempty"`
	Base        *AddItemRequest `json:"base,omitempty"`
}

// ToMenuItem builds the domain menu item described by the request.
func (r AddItemRequest) ToMenuItem() (menu.MenuItem, error) {
	quantity, err := kernel.NewQuantity(r.Quantity)
	if err != nil {
		return nil, err
	}

	switch r.Kind {
	case kindBeverage:
		return r.toBeverage(quantity)
	case kindSide:
		return r.toSide(quantity)
	case kindSandwich:
		return r.toSandwich(quantity)
	case kindBurger:
		return r.toBurger(quantity)
	case kindCombo:
		return r.toCombo(quantity)
	default:
		return nil, errs.NewValueIsInvalidError("kind")
	}
}

func (r AddItemRequest) toBeverage(quantity kernel.Quantity) (*menu.Beverage, error) {
	size, err := menu.SizeFromString(r.Size)
	if err != nil {
		return nil, err
	}

	flavor, err := menu.FlavorFromString(r.Flavor)
	if err != nil {
		return nil, err
	}

	return menu.NewBeverage(size, flavor, quantity)
}

func (r AddItemRequest) toSide(quantity kernel.Quantity) (*menu.Side, error) {
	sideType, err := menu.SideTypeFromString(r.SideType)
	if err != nil {
		return nil, err
	}

	size, err := menu.SizeFromString(r.Size)
	if err != nil {
		return nil, err
	}

	return menu.NewSide(sideType, size, quantity)
}

func (r AddItemRequest) toSandwich(quantity kernel.Quantity) (*menu.Sandwich, error) {
	bread, err := menu.BreadFromString(r.Bread)
	if err != nil {
		return nil, err
	}

	protein, err := menu.ProteinFromString(r.Protein)
	if err != nil {
		return nil, err
	}

	addOns, err := r.toAddOns()
	if err != nil {
		return nil, err
	}

	return menu.NewSandwich(bread, protein, addOns, quantity)
}

func (r AddItemRequest) toBurger(quantity kernel.Quantity) (*menu.Burger, error) {
	bread, err := menu.BreadFromString(r.Bread)
	if err != nil {
		return nil, err
	}

	addOns, err := r.toAddOns()
	if err != nil {
		return nil, err
	}

	return menu.NewBurger(bread, r.DoublePatty, addOns, quantity)
}

func (r AddItemRequest) toCombo(quantity kernel.Quantity) (*menu.Combo, error) {
	if r.Base == nil {
		return nil, errs.NewValueIsRequiredError("base")
	}

	baseQuantity, err := kernel.NewQuantity(r.Base.Quantity)
	if err != nil {
		return nil, err
	}

	var base menu.ComboBase
	switch r.Base.Kind {
	case kindSandwich:
		base, err = r.Base.toSandwich(baseQuantity)
	case kindBurger:
		base, err = r.Base.toBurger(baseQuantity)
	default:
		return nil, errs.NewValueIsInvalidError("base.kind")
	}
	if err != nil {
		return nil, err
	}

	flavor, err := menu.FlavorFromString(r.Flavor)
	if err != nil {
		return nil, err
	}

	sideType, err := menu.SideTypeFromString(r.SideType)
	if err != nil {
		return nil, err
	}

	return menu.NewCombo(base, flavor, sideType, quantity)
}

func (r AddItemRequest) toAddOns() ([]menu.AddOn, error) {
	if len(r.AddOns) == 0 {
		return nil, nil
	}

	addOns := make([]menu.AddOn, 0, len(r.AddOns))
	for _, name := range r.AddOns {
		addOn, err := menu.AddOnFromString(name)
		if err != nil {
			return nil, err
		}
		addOns = append(addOns, addOn)
	}

	return addOns, nil
}
