package menu

import (
	"fmt"

	"ruburger/internal/core/domain/model/kernel"
	"ruburger/internal/pkg/errs"
)

// AddOn is an optional topping for sandwiches and burgers.
// Each add-on carries a fixed surcharge on the unit price.
type AddOn int

const (
	// AddOnUnknown represents an invalid or undefined add-on.
	AddOnUnknown AddOn = iota

	AddOnLettuce
	AddOnTomatoes
	AddOnOnions
	AddOnAvocado
	AddOnCheese
)

func getAddOnNames() map[AddOn]string {
	return map[AddOn]string{
		AddOnLettuce:  "LETTUCE",
		AddOnTomatoes: "TOMATOES",
		AddOnOnions:   "ONIONS",
		AddOnAvocado:  "AVOCADO",
		AddOnCheese:   "CHEESE",
	}
}

func getAddOnPrices() map[AddOn]kernel.Cents {
	return map[AddOn]kernel.Cents{
		AddOnLettuce:  30,
		AddOnTomatoes: 30,
		AddOnOnions:   30,
		AddOnAvocado:  50,
		AddOnCheese:   100,
	}
}

// Validate checks that the value is one of the defined add-ons.
func (a AddOn) Validate() error {
	if _, ok := getAddOnNames()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("addOn",
			fmt.Errorf("%d is not a valid add-on", a))
	}
	return nil
}

// Price returns the surcharge for the add-on. Invalid values price at zero.
func (a AddOn) Price() kernel.Cents {
	return getAddOnPrices()[a]
}

// String returns the canonical identifier, or "UNKNOWN" for invalid values.
func (a AddOn) String() string {
	if name, ok := getAddOnNames()[a]; ok {
		return name
	}
	return "UNKNOWN"
}

// AddOnFromString resolves a canonical identifier to its AddOn value.
func AddOnFromString(name string) (AddOn, error) {
	for addOn, candidate := range getAddOnNames() {
		if candidate == name {
			return addOn, nil
		}
	}
	return AddOnUnknown, errs.NewValueIsInvalidErrorWithCause("addOn",
		fmt.Errorf("unknown identifier %q", name))
}
