// Package order provides domain entities and business logic for delivery
// orders. It implements the Order aggregate root with lifecycle management and
// state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, recipient details, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier and recipient details
//   - Only Pending and Verified orders are eligible for assignment
//   - Delivered and Cancelled are terminal states
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
