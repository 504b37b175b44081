package services

import (
	"context"

	"github.com/curexo/orders_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateSvcFacade provides live multiplicative exchange rates.
type ExchangeRateSvcFacade interface {
	// GetRate returns the rate to translate an amount from one currency to
	// another. Implementations return exactly 1 when the codes match, without
	// any network call, and make at most one outbound request otherwise — no
	// retries, no caching.
	GetRate(ctx context.Context, from, to domain.CurrencyCode) (decimal.Decimal, error)
}
