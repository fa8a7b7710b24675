package order

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// InitialVersion is the concurrency token value assigned to a freshly
// created order. Every successful status mutation increments it by one.
const InitialVersion int64 = 1

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents one completed distance lookup awaiting assignment. It is
// the aggregate root for the order lifecycle.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier
//   - Distance is set once at creation and never changes
//   - Status only ever moves Unassigned -> Taken, exactly once
//   - Version increases by one on every successful status mutation
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// distance is the road distance returned by the provider, in the
	// provider's unit (meters), immutable once set
	distance int

	// status is the current state in the order lifecycle
	status Status

	// version is the concurrency token used to detect lost updates
	version int64

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Unassigned status with the initial
// version. The distance must be non-negative; it is the classified value
// obtained from the provider and is never recomputed.
func NewOrder(id kernel.UUID, distance int) (*Order, error) {
	order := &Order{
		status:        Unassigned,
		version:       InitialVersion,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setDistance(distance),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any valid status and version, so a stored Taken order round-trips
// unchanged. All inputs are validated.
func RestoreOrder(id kernel.UUID, distance int, status Status, version int64) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	if version < InitialVersion {
		return nil, errs.NewVersionIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is below the initial version", version))
	}

	order := &Order{
		status:        status,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setDistance(distance),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct, and should be called when reconstructing orders from
// persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Distance returns the road distance obtained from the provider.
func (o *Order) Distance() int {
	return o.distance
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the concurrency token of the order.
func (o *Order) Version() int64 {
	return o.version
}

// Take claims the order, transitioning it from Unassigned to Taken and
// incrementing the concurrency token.
//
// Business rules:
//   - Only an Unassigned order can be taken
//   - Taking a Taken order is an error, never a no-op
//   - A successful take is the only mutation an order ever undergoes
func (o *Order) Take() error {
	newStatus, err := o.status.Take()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.version++
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setDistance validates and sets the order's distance.
// This is a private method used only during construction.
func (o *Order) setDistance(distance int) error {
	if distance < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%d is negative", distance))
	}
	o.distance = distance
	return nil
}
