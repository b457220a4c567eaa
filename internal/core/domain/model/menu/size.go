package menu

import (
	"fmt"

	"ruburger/internal/pkg/errs"
)

// Size is the serving size for beverages and sides.
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	SizeUnknown Size = iota

	SizeSmall
	SizeMedium
	SizeLarge
)

func getSizeNames() map[Size]string {
	return map[Size]string{
		SizeSmall:  "SMALL",
		SizeMedium: "MEDIUM",
		SizeLarge:  "LARGE",
	}
}

// Validate checks that the value is one of the defined sizes.
func (s Size) Validate() error {
	if _, ok := getSizeNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size",
			fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// String returns the canonical identifier, or "UNKNOWN" for invalid values.
func (s Size) String() string {
	if name, ok := getSizeNames()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// SizeFromString resolves a canonical identifier to its Size value.
func SizeFromString(name string) (Size, error) {
	for size, candidate := range getSizeNames() {
		if candidate == name {
			return size, nil
		}
	}
	return SizeUnknown, errs.NewValueIsInvalidErrorWithCause("size",
		fmt.Errorf("unknown identifier %q", name))
}
