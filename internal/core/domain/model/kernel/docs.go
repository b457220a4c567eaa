// Package kernel provides core domain primitives for the ordering system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - Cents and Amount: exact fixed-point money types; Cents carries item and
//     subtotal arithmetic, Amount carries tax-precision values that are rounded
//     only when formatted
//   - Quantity: a value object for item quantities (at least one unit)
//   - LineID: a value object identifying a single order line
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
