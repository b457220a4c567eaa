package menu

import (
	"fmt"

	"ruburger/internal/pkg/errs"
)

// SideType is the kind of side dish.
type SideType int

const (
	// SideTypeUnknown represents an invalid or undefined side type.
	SideTypeUnknown SideType = iota

	SideTypeChips
	SideTypeFries
	SideTypeOnionRings
	SideTypeAppleSlices
)

func getSideTypeNames() map[SideType]string {
	return map[SideType]string{
		SideTypeChips:       "CHIPS",
		SideTypeFries:       "FRIES",
		SideTypeOnionRings:  "ONION_RINGS",
		SideTypeAppleSlices: "APPLE_SLICES",
	}
}

// Validate checks that the value is one of the defined side types.
func (s SideType) Validate() error {
	if _, ok := getSideTypeNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("sideType",
			fmt.Errorf("%d is not a valid side type", s))
	}
	return nil
}

// String returns the canonical identifier, or "UNKNOWN" for invalid values.
func (s SideType) String() string {
	if name, ok := getSideTypeNames()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// SideTypeFromString resolves a canonical identifier to its SideType value.
func SideTypeFromString(name string) (SideType, error) {
	for sideType, candidate := range getSideTypeNames() {
		if candidate == name {
			return sideType, nil
		}
	}
	return SideTypeUnknown, errs.NewValueIsInvalidErrorWithCause("sideType",
		fmt.Errorf("unknown identifier %q", name))
}
