package currencyapi_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/curexo/orders_backend/internal/adapters/exchange/currencyapi"
	"github.com/curexo/orders_backend/internal/apperrors"
	"github.com/curexo/orders_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetRate_SameCurrency_NoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := currencyapi.NewClient(server.URL, "test-key", time.Second, testLogger())

	rate, err := client.GetRate(context.Background(), domain.USD, domain.USD)

	require.NoError(t, err)
	assert.True(t, rate.IsPositive())
	assert.Equal(t, "1", rate.String())
	assert.Equal(t, int64(0), calls.Load(), "identity conversion must not hit the network")
}

func TestGetRate_Success_ExactlyOneCall(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "USD", r.URL.Query().Get("base_currency"))
		assert.Equal(t, "EUR", r.URL.Query().Get("currencies"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"EUR":{"value":0.9}}}`))
	}))
	defer server.Close()

	client := currencyapi.NewClient(server.URL, "test-key", time.Second, testLogger())

	rate, err := client.GetRate(context.Background(), domain.USD, domain.EUR)

	require.NoError(t, err)
	assert.Equal(t, "0.9", rate.String())
	assert.Equal(t, int64(1), calls.Load(), "exactly one outbound request per lookup, no hidden retries")
}

func TestGetRate_Non200_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("provider exploded"))
	}))
	defer server.Close()

	client := currencyapi.NewClient(server.URL, "test-key", time.Second, testLogger())

	_, err := client.GetRate(context.Background(), domain.USD, domain.EUR)

	require.Error(t, err)
	var upstreamErr *apperrors.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusInternalServerError, upstreamErr.StatusCode)
	assert.Equal(t, "provider exploded", upstreamErr.Body)
}

func TestGetRate_SuccessFalse_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{},"success":false,"error":{"info":"invalid api key"}}`))
	}))
	defer server.Close()

	client := currencyapi.NewClient(server.URL, "bad-key", time.Second, testLogger())

	_, err := client.GetRate(context.Background(), domain.USD, domain.EUR)

	require.Error(t, err)
	var upstreamErr *apperrors.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusBadRequest, upstreamErr.StatusCode)
	assert.Equal(t, "invalid api key", upstreamErr.Body)
}

func TestGetRate_MissingPair_RateNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"GBP":{"value":0.79}}}`))
	}))
	defer server.Close()

	client := currencyapi.NewClient(server.URL, "test-key", time.Second, testLogger())

	_, err := client.GetRate(context.Background(), domain.USD, domain.EUR)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
}

func TestGetRate_MalformedPayload_ConversionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": not-json`))
	}))
	defer server.Close()

	client := currencyapi.NewClient(server.URL, "test-key", time.Second, testLogger())

	_, err := client.GetRate(context.Background(), domain.USD, domain.EUR)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConversion)
}

func TestGetRate_NetworkFailure_ServiceUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close() // connection refused from here on

	client := currencyapi.NewClient(serverURL, "test-key", time.Second, testLogger())

	_, err := client.GetRate(context.Background(), domain.USD, domain.EUR)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
}
