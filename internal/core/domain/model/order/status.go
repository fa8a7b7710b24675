package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a
// deliberately tiny state machine:
//
//	Unassigned ──> Taken
//
// Taken is final; no transition ever leaves it. The string forms are the
// wire literals exposed to callers ("UNASSIGNED", "TAKEN").
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Unassigned is the initial status assigned when an order is created.
	// Orders in this status are waiting to be claimed by a worker.
	Unassigned

	// Taken indicates the order has been claimed by exactly one worker.
	// This is a final state with no further transitions allowed.
	Taken
)

// getStatusStrings returns a map of Status values to their wire literals.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Unassigned: "UNASSIGNED",
		Taken:      "TAKEN",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Unassigned: "UNASSIGNED",
		Taken:      "TAKEN",
	}
}

// StatusFromString parses a wire literal into a Status. Returns an error for
// anything other than "UNASSIGNED" or "TAKEN".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid. Valid statuses are
// Unassigned and Taken; Unknown (0) and any other values are invalid.
// Used to reject Status values arriving from the database or the API.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire literal of the status ("UNASSIGNED", "TAKEN"), or
// "UNKNOWN" for invalid values. Implements fmt.Stringer and is safe to call
// on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Take transitions the status to Taken.
//
// Valid transitions:
//   - Unassigned -> Taken (exclusive claim)
//
// Invalid transitions:
//   - Taken -> Taken (already claimed, claims are not idempotent)
//   - Unknown -> Taken (invalid initial state)
//
// Returns (Taken, nil) on a valid transition, (0, error) otherwise.
func (s Status) Take() (Status, error) {
	if s != Unassigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to take", s.String()),
		)
	}

	return Taken, nil
}
