// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the ordering system. It implements
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderManager: owns the current draft order and the placed-order history,
//     allocates order numbers, and exports the history to a sink
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
