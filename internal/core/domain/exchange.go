package domain

import "github.com/shopspring/decimal"

// ExchangeQuote is the rate between two currencies at the instant of a lookup.
// It is never persisted or cached; each conversion fetches a fresh one.
type ExchangeQuote struct {
	FromCurrencyCode CurrencyCode    `json:"fromCurrencyCode"`
	ToCurrencyCode   CurrencyCode    `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
}
