package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// Paging bounds. Page numbers are 1-based; MaxLimit caps a single page so
// one request cannot drag the whole table over the wire.
const (
	MinPage  = 1
	MaxPage  = 1 << 30
	MinLimit = 1
	MaxLimit = 1000
)

// GetOrdersQuery retrieves one page of orders, every status included.
// Both paging parameters are mandatory and 1-based.
//
// Example:
//
//	query, err := NewGetOrdersQuery(1, 20)
//	if err != nil {
//	    return err // page or limit below 1
//	}
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	page  int
	limit int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for one page of orders.
// page and limit must both be at least 1.
func NewGetOrdersQuery(page, limit int) (GetOrdersQuery, error) {
	ordersQuery := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ordersQuery.setPage(page),
		ordersQuery.setLimit(limit),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return ordersQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the storage offset corresponding to the page number.
func (q GetOrdersQuery) Offset() int {
	return (q.page - 1) * q.limit
}

func (q *GetOrdersQuery) setPage(page int) error {
	if page < MinPage || page > MaxPage {
		return errs.NewValueIsOutOfRangeError("page", page, MinPage, MaxPage)
	}

	q.page = page
	return nil
}

func (q *GetOrdersQuery) setLimit(limit int) error {
	if limit < MinLimit || limit > MaxLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, MinLimit, MaxLimit)
	}

	q.limit = limit
	return nil
}

// GetOrdersQueryResponse represents one order as seen by readers.
// Version is the concurrency token readers can echo back for diagnostics.
//
// Example:
//
//	response := GetOrdersQueryResponse{
//	    ID:       orderID,
//	    Distance: 66473,
//	    Status:   order.Unassigned,
//	    Version:  1,
//	}
type GetOrdersQueryResponse struct {
	ID       kernel.UUID
	Distance int
	Status   order.Status
	Version  int64
}
