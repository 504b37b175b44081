package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/curexo/orders_backend/internal/apperrors"
	"github.com/curexo/orders_backend/internal/core/domain"
	portsrepo "github.com/curexo/orders_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPgxOrderRepository creates a new repository for order data.
func NewPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{pool: pool}
}

// SaveOrder inserts a new order and populates its generated ID.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order *domain.Order) error {
	now := time.Now().UTC()

	query := `
		INSERT INTO orders (customer_name, price, currency, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING order_id;
	`

	err := r.pool.QueryRow(ctx, query,
		order.CustomerName,
		order.Price,
		order.Currency.String(),
		now,
		now,
	).Scan(&order.OrderID)

	if err != nil {
		return fmt.Errorf("failed to save order for %s: %w", order.CustomerName, err)
	}

	order.CreatedAt = now
	order.LastUpdatedAt = now
	return nil
}

// FindOrderByID retrieves an order by its ID.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	query := `
		SELECT order_id, customer_name, price, currency, created_at, last_updated_at
		FROM orders
		WHERE order_id = $1;
	`
	var order domain.Order
	err := r.pool.QueryRow(ctx, query, orderID).Scan(
		&order.OrderID,
		&order.CustomerName,
		&order.Price,
		&order.Currency,
		&order.CreatedAt,
		&order.LastUpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Map db not found error to application specific error
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order by id %d: %w", orderID, err)
	}

	return &order, nil
}

// FindOrders retrieves all orders, ordered by ID so results are stable for a
// given store state.
func (r *PgxOrderRepository) FindOrders(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT order_id, customer_name, price, currency, created_at, last_updated_at
		FROM orders
		ORDER BY order_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Order, error) {
		var order domain.Order
		err := row.Scan(
			&order.OrderID,
			&order.CustomerName,
			&order.Price,
			&order.Currency,
			&order.CreatedAt,
			&order.LastUpdatedAt,
		)
		return order, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Order{}, nil // Return empty slice, not an error
		}
		return nil, fmt.Errorf("failed to scan orders: %w", err)
	}

	return orders, nil
}

// UpdateOrderCurrency persists the converted (price, currency) pair in a single
// UPDATE so the two can never diverge. Last write wins on concurrent updates of
// the same order.
func (r *PgxOrderRepository) UpdateOrderCurrency(ctx context.Context, order domain.Order) error {
	query := `
		UPDATE orders
		SET price = $2, currency = $3, last_updated_at = $4
		WHERE order_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		order.OrderID,
		order.Price,
		order.Currency.String(),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to update currency for order %d: %w", order.OrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteOrder removes an order permanently.
func (r *PgxOrderRepository) DeleteOrder(ctx context.Context, orderID int64) error {
	query := `DELETE FROM orders WHERE order_id = $1;`
	tag, err := r.pool.Exec(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order %d: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
