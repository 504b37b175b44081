package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a persisted record of a customer purchase. Price is kept at a fixed
// 2-decimal scale and is always denominated in Currency; the pair is mutated
// only through the conversion path, never independently.
type Order struct {
	OrderID       int64           `json:"id"`
	CustomerName  string          `json:"customer_name"`
	Price         decimal.Decimal `json:"price"`
	Currency      CurrencyCode    `json:"currency"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}
