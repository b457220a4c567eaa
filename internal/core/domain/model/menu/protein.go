package menu

import (
	"fmt"

	"ruburger/internal/pkg/errs"
)

// Protein is the protein choice for sandwiches.
type Protein int

const (
	// ProteinUnknown represents an invalid or undefined protein choice.
	ProteinUnknown Protein = iota

	ProteinRoastBeef
	ProteinSalmon
	ProteinChicken
)

func getProteinNames() map[Protein]string {
	return map[Protein]string{
		ProteinRoastBeef: "ROAST_BEEF",
		ProteinSalmon:    "SALMON",
		ProteinChicken:   "CHICKEN",
	}
}

// Validate checks that the value is one of the defined protein choices.
func (p Protein) Validate() error {
	if _, ok := getProteinNames()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("protein",
			fmt.Errorf("%d is not a valid protein", p))
	}
	return nil
}

// String returns the canonical identifier, or "UNKNOWN" for invalid values.
func (p Protein) String() string {
	if name, ok := getProteinNames()[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// ProteinFromString resolves a canonical identifier to its Protein value.
func ProteinFromString(name string) (Protein, error) {
	for protein, candidate := range getProteinNames() {
		if candidate == name {
			return protein, nil
		}
	}
	return ProteinUnknown, errs.NewValueIsInvalidErrorWithCause("protein",
		fmt.Errorf("unknown identifier %q", name))
}
