package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrTakeOrderCommandIsNotConstructed = errors.New(
		"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
	)
)

// TakeOrderCommand represents a request to claim one order exclusively.
//
// The operation is deliberately single-purpose: although the surface
// accepts an arbitrary status string, the only accepted value is the TAKEN
// literal. Anything else is rejected here, before any storage access.
//
// Example:
//
//	cmd, err := NewTakeOrderCommand(orderID, "TAKEN")
//	if err != nil {
//	    return err // wrong status literal or invalid id
//	}
type TakeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTakeOrderCommand creates a command to claim an order. The requested
// status must equal the TAKEN literal; this operation is a claim, not a
// general status setter.
func NewTakeOrderCommand(orderID kernel.UUID, requestedStatus string) (TakeOrderCommand, error) {
	takeCommand := TakeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		takeCommand.setOrderID(orderID),
		validateRequestedStatus(requestedStatus),
	); err != nil {
		return TakeOrderCommand{}, err
	}

	return takeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTakeOrderCommandIsNotConstructed if validation fails.
func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to claim.
func (c TakeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *TakeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func validateRequestedStatus(requestedStatus string) error {
	if requestedStatus != order.Taken.String() {
		return errs.NewBadRequestError("badRequestError",
			fmt.Sprintf("status parameter is not equal to '%s'", order.Taken))
	}
	return nil
}
