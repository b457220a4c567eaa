package services

import (
	"errors"
	"io"
	"sync"

	"ruburger/internal/core/domain/model/kernel"
	"ruburger/internal/core/domain/model/menu"
	"ruburger/internal/core/domain/model/order"
)

// ErrOrderManagerIsNotConstructed is returned when an OrderManager was not
// created through the NewOrderManager factory method.
var ErrOrderManagerIsNotConstructed = errors.New("OrderManager must be created via NewOrderManager constructor")

// OrderManager is the domain service owning the single current draft order and
// the history of placed orders. It allocates order numbers from a monotonic
// counter that starts at 1 and is never reused within the process; the counter
// advances on every order construction, whether or not that order is placed.
//
// Key responsibilities:
//   - Holding exactly one current draft at any time
//   - Transferring non-empty drafts to history on placement
//   - Cancelling placed orders (removal from history)
//   - Exporting the placed-order history to a sink
//
// Business rules:
//   - Placing an empty draft is a no-op and does not burn an order number
//   - Cancelling an order that is not in history is a no-op
//   - History preserves placement order
//
// A single mutex guards all state so the HTTP adapter and the export job can
// share one manager. State lives in memory for the lifetime of the process.
//
// Example usage:
//
//	manager, _ := services.NewOrderManager()
//	lineID, _ := manager.AddItemToCurrentOrder(item)
//	if err := manager.PlaceCurrentOrder(); err != nil {
//	    // Handle placement failure
//	}
//	_ = manager.ExportOrders(os.Stdout)
type OrderManager struct {
	mu sync.Mutex

	currentOrder *order.Order
	placedOrders []*order.Order
	nextNumber   int
}

// NewOrderManager creates a manager with a fresh empty draft holding order
// number 1. Construct it once at program start and pass it explicitly to the
// adapters that need it.
func NewOrderManager() (*OrderManager, error) {
	m := &OrderManager{nextNumber: 1}

	draft, err := m.newOrder()
	if err != nil {
		return nil, err
	}

	m.currentOrder = draft
	return m, nil
}

// Validate ensures the OrderManager was created via NewOrderManager.
func (m *OrderManager) Validate() error {
	if m == nil || m.currentOrder == nil {
		return ErrOrderManagerIsNotConstructed
	}

	return nil
}

// newOrder constructs the next order, consuming one number from the counter.
// Callers must hold the mutex (or be the constructor).
func (m *OrderManager) newOrder() (*order.Order, error) {
	o, err := order.NewOrder(m.nextNumber)
	if err != nil {
		return nil, err
	}

	m.nextNumber++
	return o, nil
}

// GetCurrentOrder returns the current draft order.
func (m *OrderManager) GetCurrentOrder() *order.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.currentOrder
}

// GetPlacedOrders returns the placed orders in placement order.
// The returned slice is a copy; callers must not mutate the orders.
func (m *OrderManager) GetPlacedOrders() []*order.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	placed := make([]*order.Order, len(m.placedOrders))
	copy(placed, m.placedOrders)
	return placed
}

// AddItemToCurrentOrder appends an item to the current draft and returns the
// identifier of the new line.
func (m *OrderManager) AddItemToCurrentOrder(item menu.MenuItem) (kernel.LineID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.currentOrder.AddItem(item)
}

// RemoveItemFromCurrentOrder removes the first item in the current draft that
// is structurally equal to the given item. Removing an absent item is a silent
// no-op.
func (m *OrderManager) RemoveItemFromCurrentOrder(item menu.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.currentOrder.RemoveItem(item)
}

// RemoveLineFromCurrentOrder removes the line with the given identifier from
// the current draft. Removing an absent line is a silent no-op.
func (m *OrderManager) RemoveLineFromCurrentOrder(id kernel.LineID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.currentOrder.RemoveLine(id)
}

// PlaceCurrentOrder finalizes the current draft: the draft is appended to the
// placed-order history and replaced with a fresh empty draft holding the next
// order number. Placing an empty draft is a no-op that neither touches history
// nor consumes an order number.
func (m *OrderManager) PlaceCurrentOrder() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.currentOrder.IsEmpty() {
		return nil
	}

	if err := m.currentOrder.Place(); err != nil {
		return err
	}

	draft, err := m.newOrder()
	if err != nil {
		return err
	}

	m.placedOrders = append(m.placedOrders, m.currentOrder)
	m.currentOrder = draft
	return nil
}

// CancelOrder removes the first placed order equal to the given one from
// history and marks it cancelled. Cancelling an order that is not in history
// is a silent no-op.
func (m *OrderManager) CancelOrder(o *order.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, placed := range m.placedOrders {
		if placed.IsEqual(o) {
			if err := placed.Cancel(); err != nil {
				return err
			}

			m.placedOrders = append(m.placedOrders[:i], m.placedOrders[i+1:]...)
			return nil
		}
	}

	return nil
}

// CancelOrderByNumber cancels the placed order with the given number.
// Unknown numbers are a silent no-op.
func (m *OrderManager) CancelOrderByNumber(number int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, placed := range m.placedOrders {
		if placed.Number() == number {
			if err := placed.Cancel(); err != nil {
				return err
			}

			m.placedOrders = append(m.placedOrders[:i], m.placedOrders[i+1:]...)
			return nil
		}
	}

	return nil
}

// ExportOrders writes the placed-order history to the sink in the receipt
// layout. Sink failures are returned to the caller unchanged.
func (m *OrderManager) ExportOrders(sink io.Writer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return order.Export(sink, m.placedOrders)
}
