package repositories

import (
	"context"

	"github.com/curexo/orders_backend/internal/core/domain"
)

// OrderReader defines read operations for order data
type OrderReader interface {
	// FindOrderByID retrieves a specific order by its ID.
	FindOrderByID(ctx context.Context, orderID int64) (*domain.Order, error)

	// FindOrders retrieves all orders in a stable, store-defined order.
	FindOrders(ctx context.Context) ([]domain.Order, error)
}

// OrderWriter defines write operations for order data
type OrderWriter interface {
	// SaveOrder persists a new order and populates its generated ID.
	SaveOrder(ctx context.Context, order *domain.Order) error

	// UpdateOrderCurrency persists a new (price, currency) pair for an order
	// in a single atomic write.
	UpdateOrderCurrency(ctx context.Context, order domain.Order) error
}

// OrderLifecycleManager defines operations for managing order lifecycle
type OrderLifecycleManager interface {
	// DeleteOrder removes an order permanently. No soft delete.
	DeleteOrder(ctx context.Context, orderID int64) error
}

// OrderRepositoryFacade combines all order-related repository interfaces
// This is a facade for clients that need access to all operations
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
	OrderLifecycleManager
}
