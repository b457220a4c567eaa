package menu

import (
	"fmt"

	"ruburger/internal/pkg/errs"
)

// Bread is the bread choice for sandwiches and burgers.
// The canonical identifier of a bread is its uppercase name, e.g. "BRIOCHE".
type Bread int

const (
	// BreadUnknown represents an invalid or undefined bread choice.
	// This value (0) helps catch uninitialized Bread values.
	BreadUnknown Bread = iota

	BreadBrioche
	BreadWheat
	BreadPretzel
	BreadBagel
	BreadSourdough
)

func getBreadNames() map[Bread]string {
	return map[Bread]string{
		BreadBrioche:   "BRIOCHE",
		BreadWheat:     "WHEAT",
		BreadPretzel:   "PRETZEL",
		BreadBagel:     "BAGEL",
		BreadSourdough: "SOURDOUGH",
	}
}

// Validate checks that the value is one of the defined bread choices.
func (b Bread) Validate() error {
	if _, ok := getBreadNames()[b]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("bread",
			fmt.Errorf("%d is not a valid bread", b))
	}
	return nil
}

// String returns the canonical identifier, or "UNKNOWN" for invalid values.
func (b Bread) String() string {
	if name, ok := getBreadNames()[b]; ok {
		return name
	}
	return "UNKNOWN"
}

// BreadFromString resolves a canonical identifier to its Bread value.
func BreadFromString(name string) (Bread, error) {
	for bread, candidate := range getBreadNames() {
		if candidate == name {
			return bread, nil
		}
	}
	return BreadUnknown, errs.NewValueIsInvalidErrorWithCause("bread",
		fmt.Errorf("unknown identifier %q", name))
}
