package menu

import (
	"fmt"

	"ruburger/internal/pkg/errs"
)

// Flavor is the drink flavor for beverages and combo drinks.
// Flavor never affects price.
type Flavor int

const (
	// FlavorUnknown represents an invalid or undefined flavor.
	FlavorUnknown Flavor = iota

	FlavorCola
	FlavorTea
	FlavorJuice
	FlavorLime
	FlavorCherry
	FlavorOrange
	FlavorGrape
	FlavorPeach
	FlavorMango
	FlavorStrawberry
	FlavorRaspberry
	FlavorLemon
	FlavorApple
	FlavorBlueberry
	FlavorPineapple
)

func getFlavorNames() map[Flavor]string {
	return map[Flavor]string{
		FlavorCola:       "COLA",
		FlavorTea:        "TEA",
		FlavorJuice:      "JUICE",
		FlavorLime:       "LIME",
		FlavorCherry:     "CHERRY",
		FlavorOrange:     "ORANGE",
		FlavorGrape:      "GRAPE",
		FlavorPeach:      "PEACH",
		FlavorMango:      "MANGO",
		FlavorStrawberry: "STRAWBERRY",
		FlavorRaspberry:  "RASPBERRY",
		FlavorLemon:      "LEMON",
		FlavorApple:      "APPLE",
		FlavorBlueberry:  "BLUEBERRY",
		FlavorPineapple:  "PINEAPPLE",
	}
}

// Validate checks that the value is one of the defined flavors.
func (f Flavor) Validate() error {
	if _, ok := getFlavorNames()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("flavor",
			fmt.Errorf("%d is not a valid flavor", f))
	}
	return nil
}

// String returns the canonical identifier, or "UNKNOWN" for invalid values.
func (f Flavor) String() string {
	if name, ok := getFlavorNames()[f]; ok {
		return name
	}
	return "UNKNOWN"
}

// FlavorFromString resolves a canonical identifier to its Flavor value.
func FlavorFromString(name string) (Flavor, error) {
	for flavor, candidate := range getFlavorNames() {
		if candidate == name {
			return flavor, nil
		}
	}
	return FlavorUnknown, errs.NewValueIsInvalidErrorWithCause("flavor",
		fmt.Errorf("unknown identifier %q", name))
}
