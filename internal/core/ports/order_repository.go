package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using the
	// aggregate's previous version as a guard: the row is only written if
	// its stored version equals aggregate.Version()-1. A version mismatch
	// or missing row surfaces as an error, never as a silent no-op.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate by its unique identifier
	// while holding an exclusive row lock for the remainder of the current
	// transaction. Callers must be inside a unit of work; the lock closes
	// the check-then-set race on claims.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetPage retrieves one page of orders in stable insertion order
	// (id ascending). offset and limit are zero-based storage values; the
	// caller owns translating user-facing page numbers.
	GetPage(ctx context.Context, offset int, limit int) ([]*order.Order, error)
}
