package dto

import (
	"fmt"
	"time"

	"github.com/curexo/orders_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest defines the data needed to create a new order.
// Price must be positive; it is normalized to 2 decimal places on creation.
type CreateOrderRequest struct {
	CustomerName string              `json:"customer_name" binding:"required"`
	Price        decimal.Decimal     `json:"price" binding:"required"`
	Currency     domain.CurrencyCode `json:"currency" binding:"required,currency"`
}

// UpdateOrderCurrencyRequest defines the data needed to change an order's currency.
type UpdateOrderCurrencyRequest struct {
	Currency domain.CurrencyCode `json:"currency" binding:"required,currency"`
}

// OrderQueryParams holds optional query parameters for order reads.
type OrderQueryParams struct {
	ToCurrency domain.CurrencyCode `form:"to_currency" binding:"omitempty,currency"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	ID            int64               `json:"id"`
	CustomerName  string              `json:"customer_name"`
	Price         decimal.Decimal     `json:"price"`
	Currency      domain.CurrencyCode `json:"currency"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// DeleteOrderResponse confirms the deletion of an order.
type DeleteOrderResponse struct {
	Detail string `json:"detail"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO
func ToOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:            order.OrderID,
		CustomerName:  order.CustomerName,
		Price:         order.Price,
		Currency:      order.Currency,
		CreatedAt:     order.CreatedAt,
		LastUpdatedAt: order.LastUpdatedAt,
	}
}

// ToListOrderResponse converts a slice of domain.Order to a slice of OrderResponse DTOs
func ToListOrderResponse(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, len(orders))
	for i, order := range orders {
		res[i] = ToOrderResponse(&order)
	}
	return res
}

// ToDeleteOrderResponse builds the deletion confirmation for an order ID.
func ToDeleteOrderResponse(orderID int64) DeleteOrderResponse {
	return DeleteOrderResponse{Detail: fmt.Sprintf("Order %d has been deleted.", orderID)}
}
