// Package order provides the Order aggregate for the dispatch system.
//
// The package includes:
//   - Order: the aggregate root holding identity, distance, status, and the
//     concurrency token
//   - Status: a two-state machine enforcing the single valid transition
//     UNASSIGNED -> TAKEN
//
// Key business rules:
//   - An order exists only as the result of a successful distance lookup
//   - The distance is immutable once set
//   - At most one caller ever transitions a given order to TAKEN; a second
//     claim is an error, not a no-op
//   - TAKEN is final
package order
