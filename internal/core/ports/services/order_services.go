package services

import (
	"context"

	"github.com/curexo/orders_backend/internal/core/domain"
	"github.com/curexo/orders_backend/internal/dto"
)

// OrderReaderSvc defines read operations for order data.
//
// toCurrency is optional on reads; when non-empty the returned order(s) carry a
// converted price/currency view while the underlying store stays untouched.
type OrderReaderSvc interface {
	// GetOrderByID retrieves an order by ID.
	GetOrderByID(ctx context.Context, orderID int64, toCurrency domain.CurrencyCode) (*domain.Order, error)

	// ListOrders retrieves all orders.
	ListOrders(ctx context.Context, toCurrency domain.CurrencyCode) ([]domain.Order, error)
}

// OrderWriterSvc defines write operations for order data
type OrderWriterSvc interface {
	// CreateOrder creates a new order.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)

	// UpdateOrderCurrency converts an order's price to a new currency and
	// persists the converted pair. This is the only write path for price.
	UpdateOrderCurrency(ctx context.Context, orderID int64, newCurrency domain.CurrencyCode) (*domain.Order, error)
}

// OrderLifecycleSvc defines operations for managing order lifecycle
type OrderLifecycleSvc interface {
	// DeleteOrder removes an order permanently.
	DeleteOrder(ctx context.Context, orderID int64) error
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
	OrderLifecycleSvc
}
