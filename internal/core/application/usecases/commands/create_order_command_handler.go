package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation:
// one synchronous provider lookup, classification of the response, and a
// single insert of the resulting order in UNASSIGNED status.
//
// Failure paths leave no trace: the provider is called before the
// transaction opens, so a classifier or transport failure never produces a
// persisted record, and no lock is ever held across the network call.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, distanceClient)
//	cmd, _ := NewCreateOrderCommand(origin, destination)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created is persisted with its assigned id, UNASSIGNED status
type CreateOrderCommandHandler struct {
	uowFactory     OrderUoWFactory
	distanceClient ports.DistanceClient
	classifier     services.DistanceClassifier
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence and a
// DistanceClient for the provider lookup.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	distanceClient ports.DistanceClient,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		distanceClient: distanceClient,
		classifier:     services.NewDistanceClassifier(),
	}
}

// Handle processes the order creation command.
//
// Exactly one provider call is made, with no retry. Any classified failure
// is propagated unchanged as the operation's result: no wrapping, no
// downgrade. On success exactly one new record is persisted; on any failure
// zero records are.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	response, err := h.distanceClient.GetDistance(ctx, cmd.Origin(), cmd.Destination())
	if err != nil {
		return nil, err
	}

	distance, err := h.classifier.Classify(response)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), distance)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
