package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finovabank/banking-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeRatesAPIProviderGetRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("access_key"))
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		assert.Equal(t, "EUR", r.URL.Query().Get("symbols"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"base":"USD","rates":{"EUR":0.91}}`))
	}))
	defer server.Close()

	provider := NewExchangeRatesAPIProvider(server.URL, "test-key", time.Second)

	quote, err := provider.GetRate(context.Background(), domain.CurrencyUSD, domain.CurrencyEUR)
	require.NoError(t, err)

	assert.Equal(t, "0.91", quote.Rate.String())
	assert.Equal(t, domain.RateSourceRemote, quote.Source)
	assert.Equal(t, domain.CurrencyUSD, quote.From)
	assert.Equal(t, domain.CurrencyEUR, quote.To)
}

func TestExchangeRatesAPIProviderNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	provider := NewExchangeRatesAPIProvider(server.URL, "test-key", time.Second)

	_, err := provider.GetRate(context.Background(), domain.CurrencyUSD, domain.CurrencyEUR)
	assert.ErrorContains(t, err, "502")
}

func TestExchangeRatesAPIProviderMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success":`))
	}))
	defer server.Close()

	provider := NewExchangeRatesAPIProvider(server.URL, "test-key", time.Second)

	_, err := provider.GetRate(context.Background(), domain.CurrencyUSD, domain.CurrencyEUR)
	assert.ErrorContains(t, err, "parse")
}

func TestExchangeRatesAPIProviderReportedFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success":false}`))
	}))
	defer server.Close()

	provider := NewExchangeRatesAPIProvider(server.URL, "test-key", time.Second)

	_, err := provider.GetRate(context.Background(), domain.CurrencyUSD, domain.CurrencyEUR)
	assert.ErrorContains(t, err, "failure")
}

func TestExchangeRatesAPIProviderMissingRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success":true,"base":"USD","rates":{"GBP":0.75}}`))
	}))
	defer server.Close()

	provider := NewExchangeRatesAPIProvider(server.URL, "test-key", time.Second)

	_, err := provider.GetRate(context.Background(), domain.CurrencyUSD, domain.CurrencyEUR)
	assert.ErrorContains(t, err, "no rate for EUR")
}
