package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/finovabank/banking-service/internal/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRatesAPIProvider fetches live rates over HTTP. The request shape
// follows exchangeratesapi.io: base currency plus a comma-separated symbols
// list, keyed by access_key.
type ExchangeRatesAPIProvider struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

type ratesResponse struct {
	Success bool               `json:"success"`
	Base    string             `json:"base"`
	Rates   map[string]float64 `json:"rates"`
}

func NewExchangeRatesAPIProvider(endpoint, apiKey string, timeout time.Duration) *ExchangeRatesAPIProvider {
	return &ExchangeRatesAPIProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *ExchangeRatesAPIProvider) GetName() string {
	return "exchangeratesapi"
}

func (p *ExchangeRatesAPIProvider) GetRate(ctx context.Context, from, to domain.Currency) (*domain.RateQuote, error) {
	url := fmt.Sprintf("%s?access_key=%s&base=%s&symbols=%s", p.endpoint, p.apiKey, from, to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate API returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var ratesResp ratesResponse
	if err := json.Unmarshal(body, &ratesResp); err != nil {
		return nil, fmt.Errorf("failed to parse rate API response: %w", err)
	}

	if !ratesResp.Success {
		return nil, fmt.Errorf("rate API reported failure for base %s", from)
	}

	rate, ok := ratesResp.Rates[string(to)]
	if !ok {
		return nil, fmt.Errorf("rate API response has no rate for %s", to)
	}
	if rate <= 0 {
		return nil, fmt.Errorf("rate API returned non-positive rate %f for %s/%s", rate, from, to)
	}

	return &domain.RateQuote{
		From:        from,
		To:          to,
		Rate:        decimal.NewFromFloat(rate),
		Source:      domain.RateSourceRemote,
		RetrievedAt: time.Now(),
	}, nil
}
