package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new order from one
// origin/destination coordinate pair. Both pairs are validated value
// objects, so a constructed command is guaranteed to be shippable to the
// distance provider.
//
// Example:
//
//	origin, _ := kernel.NewCoordinates("48.858245", "2.294642")
//	destination, _ := kernel.NewCoordinates("48.868480", "2.781909")
//	cmd, err := NewCreateOrderCommand(origin, destination)
//	if err != nil {
//	    return fmt.Errorf("invalid order coordinates: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	origin      kernel.Coordinates
	destination kernel.Coordinates

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Both coordinate pairs must be properly constructed; this is the fail-fast
// gate that runs before any provider call is made.
func NewCreateOrderCommand(origin, destination kernel.Coordinates) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrigin(origin),
		orderCommand.setDestination(destination),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Origin returns the starting coordinate pair.
func (c CreateOrderCommand) Origin() kernel.Coordinates {
	return c.origin
}

// Destination returns the ending coordinate pair.
func (c CreateOrderCommand) Destination() kernel.Coordinates {
	return c.destination
}

func (c *CreateOrderCommand) setOrigin(origin kernel.Coordinates) error {
	if err := origin.Validate(); err != nil {
		return err
	}

	c.origin = origin
	return nil
}

func (c *CreateOrderCommand) setDestination(destination kernel.Coordinates) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}
