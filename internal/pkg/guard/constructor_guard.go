package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil
// error for a zero-value guard. It keeps validation failures meaningful even when
// no object-specific error was provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its designated
// constructor or left as a zero value. Embedding a ConstructorGuard in a value
// object and setting it via NewConstructorGuard inside the constructor lets
// Validate reject structs that bypassed construction.
//
// Example usage:
//
//	type Selection struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSelection(name string) (Selection, error) {
//	    if name == "" {
//	        return Selection{}, errors.New("name is required")
//	    }
//	    return Selection{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s Selection) Validate() error {
//	    return s.guard.Validate(errSelectionNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value guard it
// returns notConstructed, or ErrDefaultConstructorGuard when notConstructed is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructed == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructed
}
