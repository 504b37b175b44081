package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/curexo/orders_backend/internal/apperrors"
	"github.com/curexo/orders_backend/internal/core/domain"
	portsrepo "github.com/curexo/orders_backend/internal/core/ports/repositories"
	portssvc "github.com/curexo/orders_backend/internal/core/ports/services"
	"github.com/curexo/orders_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// OrderService provides business logic for orders, including the two
// conversion entry points: a view-only transform on reads and a persisted
// transform on currency updates. The asymmetry is deliberate; reads never
// write back.
type OrderService struct {
	orderRepo   portsrepo.OrderRepositoryFacade
	rateService portssvc.ExchangeRateSvcFacade
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, rateService portssvc.ExchangeRateSvcFacade) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		rateService: rateService,
	}
}

// CreateOrder validates and persists a new order. The price is normalized to
// the fixed 2-decimal scale before it is stored.
func (s *OrderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer name cannot be empty", apperrors.ErrValidation)
	}
	if req.Price.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: price must be positive", apperrors.ErrValidation)
	}
	if !req.Currency.IsValid() {
		return nil, fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, req.Currency)
	}

	order := domain.Order{
		CustomerName: req.CustomerName,
		Price:        req.Price.Round(2),
		Currency:     req.Currency,
	}

	if err := s.orderRepo.SaveOrder(ctx, &order); err != nil {
		return nil, fmt.Errorf("failed to create order in service: %w", err)
	}

	return &order, nil
}

// GetOrderByID retrieves an order. When toCurrency is non-empty the returned
// order is a converted view; the stored record is never touched on reads.
func (s *OrderService) GetOrderByID(ctx context.Context, orderID int64, toCurrency domain.CurrencyCode) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order in service: %w", err)
	}

	if toCurrency != "" {
		if err := s.convertOrder(ctx, order, toCurrency); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// ListOrders retrieves all orders, optionally as converted views.
func (s *OrderService) ListOrders(ctx context.Context, toCurrency domain.CurrencyCode) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders in service: %w", err)
	}
	if orders == nil {
		return []domain.Order{}, nil
	}

	if toCurrency != "" {
		for i := range orders {
			if err := s.convertOrder(ctx, &orders[i], toCurrency); err != nil {
				return nil, err
			}
		}
	}

	return orders, nil
}

// UpdateOrderCurrency converts an order's price to a new currency and persists
// the converted (price, currency) pair atomically. This is the only exposed
// write path for price. Concurrent updates of the same order are last-write-wins.
func (s *OrderService) UpdateOrderCurrency(ctx context.Context, orderID int64, newCurrency domain.CurrencyCode) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order in service: %w", err)
	}

	if order.Currency == newCurrency {
		return nil, fmt.Errorf("%w: currency is the same as the current one", apperrors.ErrNoChange)
	}

	if err := s.convertOrder(ctx, order, newCurrency); err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateOrderCurrency(ctx, *order); err != nil {
		return nil, fmt.Errorf("failed to update order currency in service: %w", err)
	}

	order.LastUpdatedAt = time.Now().UTC()
	return order, nil
}

// DeleteOrder removes an order permanently.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID int64) error {
	if err := s.orderRepo.DeleteOrder(ctx, orderID); err != nil {
		return fmt.Errorf("failed to delete order in service: %w", err)
	}
	return nil
}

// convertOrder rewrites the order's price and currency in place using a live
// rate. Matching currencies are the identity: no rate lookup, no mutation.
// The new price is price * rate rounded half away from zero to 2 decimals.
func (s *OrderService) convertOrder(ctx context.Context, order *domain.Order, toCurrency domain.CurrencyCode) error {
	if order.Currency == toCurrency {
		return nil
	}
	if !toCurrency.IsValid() {
		return fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, toCurrency)
	}

	rate, err := s.rateService.GetRate(ctx, order.Currency, toCurrency)
	if err != nil {
		return err
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: non-positive rate %s for %s to %s", apperrors.ErrConversion, rate, order.Currency, toCurrency)
	}

	order.Price = order.Price.Mul(rate).Round(2)
	order.Currency = toCurrency
	return nil
}
