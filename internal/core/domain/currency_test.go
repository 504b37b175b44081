package domain_test

import (
	"testing"

	"github.com/curexo/orders_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCurrencyCode_IsValid(t *testing.T) {
	assert.True(t, domain.USD.IsValid())
	assert.True(t, domain.EUR.IsValid())
	assert.True(t, domain.JPY.IsValid())

	assert.False(t, domain.CurrencyCode("").IsValid())
	assert.False(t, domain.CurrencyCode("XXX").IsValid())
	assert.False(t, domain.CurrencyCode("usd").IsValid(), "codes are uppercase only")
}

func TestCurrencyCode_String(t *testing.T) {
	assert.Equal(t, "USD", domain.USD.String())
}
