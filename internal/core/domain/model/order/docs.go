// Package order provides domain entities and business logic for order
// management in the ordering system. It implements the Order aggregate root
// with lifecycle management and state transitions, plus the receipt export
// formatter.
//
// The package includes:
//   - Order: The aggregate root that manages the item sequence, the immutable
//     order number, and derived subtotal/tax/total
//   - Line: A single order entry pairing a menu item with its line identifier
//   - Status: A state machine that enforces valid order status transitions
//   - Export: The human-readable receipt writer for placed orders
//
// Key business rules:
//   - Order numbers are assigned once at construction and never change
//   - Items are mutable only while the order is a draft
//   - Order status follows a defined workflow: Draft -> Placed -> Cancelled
//   - Tax is 6.625% of the subtotal and total equals subtotal plus tax exactly;
//     rounding to cents is a presentation concern
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
