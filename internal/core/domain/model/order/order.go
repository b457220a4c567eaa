package order

import (
	"errors"
	"fmt"

	"ruburger/internal/core/domain/model/kernel"
	"ruburger/internal/core/domain/model/menu"
	"ruburger/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// taxRate is the sales tax applied to the subtotal, in hundred-thousandths:
// 6625 means 6.625%.
const taxRate int64 = 6625

// Line is a single entry in an order: a menu item plus the identifier assigned
// when the item was added. The identifier lets adapters remove a precise line
// without re-describing the item.
type Line struct {
	id   kernel.LineID
	item menu.MenuItem
}

// ID returns the line's identifier.
func (l Line) ID() kernel.LineID {
	return l.id
}

// Item returns the menu item on this line.
func (l Line) Item() menu.MenuItem {
	return l.item
}

// Order represents a customer's order. It is the aggregate root holding an
// ordered sequence of menu items and deriving subtotal, tax, and total.
//
// Order follows these invariants:
//   - The order number is assigned once at construction and never changes
//   - Items may be added and removed only while the order is a draft
//   - Subtotal is the exact sum of item prices; tax is subtotal × 6.625%,
//     carried unrounded; total equals subtotal plus tax exactly
//   - Can only be created through the NewOrder constructor
type Order struct {
	number int
	lines  []Line
	status Status

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a draft Order with the given order number and no items.
// Numbers are allocated by the order manager; they start at 1 and are never
// reused within a process.
func NewOrder(number int) (*Order, error) {
	if number < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%d is not greater than 0", number))
	}

	return &Order{
		number:        number,
		status:        Draft,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their order numbers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number == other.number
}

// Number returns the unique order number. It never changes after construction.
func (o *Order) Number() int {
	return o.number
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Lines returns the order lines in insertion order. The returned slice is a copy.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Items returns the menu items in insertion order. The returned slice is a copy.
func (o *Order) Items() []menu.MenuItem {
	items := make([]menu.MenuItem, len(o.lines))
	for i, line := range o.lines {
		items[i] = line.item
	}
	return items
}

// IsEmpty reports whether the order has no items.
func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

// AddItem appends a menu item to the order and returns the identifier of the
// new line.
//
// This method enforces the following business rules:
//   - The item must be non-nil and properly constructed
//   - The order must still be a draft
func (o *Order) AddItem(item menu.MenuItem) (kernel.LineID, error) {
	if item == nil {
		return kernel.LineID{}, errs.NewValueIsRequiredError("item")
	}

	if err := item.Validate(); err != nil {
		return kernel.LineID{}, err
	}

	if err := o.status.ValidateMutate(); err != nil {
		return kernel.LineID{}, err
	}

	id := kernel.NewLineID()
	o.lines = append(o.lines, Line{id: id, item: item})
	return id, nil
}

// RemoveItem removes the first line whose item is structurally equal to the
// given item. Removing an item that is not present is a silent no-op.
//
// Structural equality is used rather than pointer identity because adapters
// rebuild items from user selections; see menu.IsEqual.
func (o *Order) RemoveItem(item menu.MenuItem) error {
	if err := o.status.ValidateMutate(); err != nil {
		return err
	}

	for i, line := range o.lines {
		if menu.IsEqual(line.item, item) {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			return nil
		}
	}

	return nil
}

// RemoveLine removes the line with the given identifier.
// Removing an absent line is a silent no-op.
func (o *Order) RemoveLine(id kernel.LineID) error {
	if err := o.status.ValidateMutate(); err != nil {
		return err
	}

	for i, line := range o.lines {
		if line.id.IsEqual(id) {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			return nil
		}
	}

	return nil
}

// Clear removes all items from the order.
func (o *Order) Clear() error {
	if err := o.status.ValidateMutate(); err != nil {
		return err
	}

	o.lines = nil
	return nil
}

// Subtotal returns the exact sum of the item prices, in cents.
func (o *Order) Subtotal() kernel.Cents {
	var subtotal kernel.Cents
	for _, line := range o.lines {
		subtotal = subtotal.Add(line.item.Price())
	}
	return subtotal
}

// Tax returns the sales tax on the subtotal. The value is carried at
// tax-precision without rounding; rounding happens only when formatting.
func (o *Order) Tax() kernel.Amount {
	return o.Subtotal().ApplyRate(taxRate)
}

// Total returns the subtotal plus tax, exactly.
func (o *Order) Total() kernel.Amount {
	return o.Subtotal().Amount().Add(o.Tax())
}

// Place marks the order as placed.
//
// This method enforces the following business rules:
//   - The order must be a draft
//   - The order must contain at least one item
//
// After placement the items are read-only.
func (o *Order) Place() error {
	if o.IsEmpty() {
		return errs.NewValueIsRequiredError("items")
	}

	newStatus, err := o.status.Place()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks a placed order as cancelled.
// Cancellation is final; there is no transition back.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
