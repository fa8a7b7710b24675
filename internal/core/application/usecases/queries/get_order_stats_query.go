package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
)

// GetOrderStatsQuery counts orders grouped by status.
// Feeds the periodic backlog report; it is a parameterless query.
//
// Example:
//
//	query := NewGetOrderStatsQuery()
//	handler := NewGetOrderStatsQueryHandler(db)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to count orders: %w", err)
//	}
//
//	for _, stat := range stats {
//	    fmt.Printf("%s: %d\n", stat.Status, stat.Count)
//	}
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query counting orders per status.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatsQueryIsNotConstructed if validation fails.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse is one row of the backlog report:
// a status and the number of orders currently in it.
type GetOrderStatsQueryResponse struct {
	Status order.Status
	Count  int64
}
