package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// TakeOrderCommandHandler handles the business logic for claiming an order.
// The claimed row is locked for the duration of the transaction, so two
// concurrent claims on the same order serialize at the storage layer and
// the loser observes the already taken state.
//
// Example:
//
//	handler := NewTakeOrderCommandHandler(uowFactory)
//	cmd, _ := NewTakeOrderCommand(orderID, "TAKEN")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order claim failed: %w", err)
//	}
type TakeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTakeOrderCommandHandler creates a handler for order claims.
// Requires an OrderUoWFactory for transactional persistence operations.
func NewTakeOrderCommandHandler(uowFactory OrderUoWFactory) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the take order command.
// Loads the order under an exclusive lock, transitions it to TAKEN and
// persists the new state. Rolls back on any error, leaving the order
// available for the next claimer.
func (h *TakeOrderCommandHandler) Handle(ctx context.Context, cmd TakeOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orderAggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewNotFoundErrorWithCause("orderNotFound", "order not found", err)
		}
		return err
	}

	if orderAggregate.Status() == order.Taken {
		return errs.NewPreconditionFailedError("orderAlreadyTaken", "order already taken")
	}

	if err = orderAggregate.Take(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
