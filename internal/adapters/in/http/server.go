package http

import (
	"errors"
	"log/slog"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases, and owns
// the mapping from the error taxonomy to status codes: 400 for bad
// requests, 404 for missing orders, 412 for failed preconditions, 500 for
// everything else. Every error body carries a stable machine key.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	takeOrderHandler   commands.TakeOrderCommandHandler

	// Query handlers
	getOrdersHandler queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	takeOrderHandler commands.TakeOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		takeOrderHandler:   takeOrderHandler,
		getOrdersHandler:   getOrdersHandler,
	}
}

// CreateOrder handles POST /orders - creates a new order from one
// origin/destination coordinate pair.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var coordinates servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&coordinates); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Key:     "badRequestError",
			Message: "Invalid request body",
		})
	}

	slog.Info("creating order",
		"origin", coordinates.Origin, "destination", coordinates.Destination)

	origin, err := kernel.CoordinatesFromSlice("origin", coordinates.Origin)
	if err != nil {
		return s.respondError(ctx, err)
	}

	destination, err := kernel.CoordinatesFromSlice("destination", coordinates.Destination)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(origin, destination)
	if err != nil {
		return s.respondError(ctx, err)
	}

	createdOrder, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:       createdOrder.ID().Bytes(),
		Distance: createdOrder.Distance(),
		Status:   servers.OrderState(createdOrder.Status().String()),
		Version:  createdOrder.Version(),
	})
}

// GetOrders handles GET /orders - retrieves one page of orders.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	query, err := queries.NewGetOrdersQuery(params.Page, params.Limit)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:       o.ID.Bytes(),
			Distance: o.Distance,
			Status:   servers.OrderState(o.Status.String()),
			Version:  o.Version,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TakeOrder handles PATCH /orders/:orderId - claims an order exclusively.
func (s *Server) TakeOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var status servers.TakeOrderJSONRequestBody
	if err := ctx.Bind(&status); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Key:     "badRequestError",
			Message: "Invalid request body",
		})
	}

	if status.Status == "" {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Key:     "nullObjectError",
			Message: "Status parameter is null",
		})
	}

	slog.Info("taking order", "order_id", orderId, "status", status.Status)

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewTakeOrderCommand(id, status.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.takeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.PatchOrderResponse{
		Status: servers.SUCCESS,
	})
}

// respondError translates taxonomy and validation errors into HTTP
// responses. Classified errors keep their key and message; validation
// failures surface as 400 with the generic bad request key.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var badRequest *errs.BadRequestError
	if errors.As(err, &badRequest) {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Key:     badRequest.Key,
			Message: badRequest.Message,
		})
	}

	var notFound *errs.NotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Key:     notFound.Key,
			Message: notFound.Message,
		})
	}

	var preconditionFailed *errs.PreconditionFailedError
	if errors.As(err, &preconditionFailed) {
		return ctx.JSON(http.StatusPreconditionFailed, servers.Error{
			Key:     preconditionFailed.Key,
			Message: preconditionFailed.Message,
		})
	}

	var internal *errs.InternalError
	if errors.As(err, &internal) {
		slog.Error("request failed", "key", internal.Key, "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Key:     internal.Key,
			Message: internal.Message,
		})
	}

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Key:     "badRequestError",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Key:     "orderNotFound",
			Message: err.Error(),
		})
	}

	slog.Error("request failed", "error", err)
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Key:     "internalServerError",
		Message: "Internal server error",
	})
}
