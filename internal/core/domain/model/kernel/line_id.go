package kernel

import (
	"fmt"

	"ruburger/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrLineIDIsNotConstructed indicates that a LineID was not properly initialized
// through one of the constructor functions. This error is returned when validating
// a zero-value LineID.
var ErrLineIDIsNotConstructed = errs.NewValueIsRequiredError(
	"line ID must be created via NewLineID or LineIDFromString")

// LineID is a value object identifying a single line in an order.
// It wraps the github.com/google/uuid implementation to provide domain-specific
// behavior and ensure immutability. A fresh LineID is assigned every time an item
// is added to an order, which gives transport adapters a precise handle on a line
// without re-describing the item.
//
// The zero value of LineID is invalid and must be constructed using NewLineID or
// LineIDFromString.
type LineID struct {
	id uuid.UUID
}

// NewLineID generates a new random LineID (UUID version 4).
func NewLineID() LineID {
	return LineID{
		id: uuid.New(),
	}
}

// LineIDFromString parses a LineID from its string representation.
// Returns an error if the string is not a valid UUID.
func LineIDFromString(value string) (LineID, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return LineID{}, errs.NewValueIsInvalidErrorWithCause("lineID",
			fmt.Errorf("cannot parse %q: %w", value, err))
	}

	return LineID{id: parsed}, nil
}

// Validate ensures the LineID was created through a constructor.
// A zero-value LineID fails validation.
func (l LineID) Validate() error {
	if l.id == uuid.Nil {
		return ErrLineIDIsNotConstructed
	}

	return nil
}

// IsEqual compares two line IDs by value.
func (l LineID) IsEqual(other LineID) bool {
	return l.id == other.id
}

// String returns the canonical UUID string representation.
func (l LineID) String() string {
	return l.id.String()
}
