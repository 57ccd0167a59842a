package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/finovabank/banking-service/internal/domain"
	"github.com/shopspring/decimal"
)

type ExchangeRateService interface {
	GetQuote(ctx context.Context, from, to domain.Currency) (*domain.RateQuote, error)
}

// DefaultExchangeRateService resolves a quote through the remote provider
// first and falls back to the static table when the remote lookup fails for
// any reason. Remote quotes are cached for a short TTL so a burst of
// transfers does not hammer the rate API.
type DefaultExchangeRateService struct {
	remote   domain.ExchangeRateProvider
	fallback domain.ExchangeRateProvider
	cache    *rateCache
}

type rateCache struct {
	quotes map[string]cachedQuote
	ttl    time.Duration
	mu     sync.RWMutex
}

type cachedQuote struct {
	quote    domain.RateQuote
	cachedAt time.Time
}

func NewDefaultExchangeRateService(remote, fallback domain.ExchangeRateProvider, cacheTTL time.Duration) *DefaultExchangeRateService {
	return &DefaultExchangeRateService{
		remote:   remote,
		fallback: fallback,
		cache: &rateCache{
			quotes: make(map[string]cachedQuote),
			ttl:    cacheTTL,
		},
	}
}

func (s *DefaultExchangeRateService) GetQuote(ctx context.Context, from, to domain.Currency) (*domain.RateQuote, error) {
	// Self-conversion never leaves the process.
	if from == to {
		return &domain.RateQuote{
			From:        from,
			To:          to,
			Rate:        decimal.NewFromInt(1),
			Source:      domain.RateSourceFallback,
			RetrievedAt: time.Now(),
		}, nil
	}

	cacheKey := fmt.Sprintf("%s_%s", from, to)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return &cached, nil
	}

	quote, remoteErr := s.remote.GetRate(ctx, from, to)
	if remoteErr == nil {
		s.cache.Set(cacheKey, *quote)
		return quote, nil
	}

	slog.Warn("remote rate lookup failed, using fallback table",
		"provider", s.remote.GetName(),
		"pair", cacheKey,
		"error", remoteErr.Error())

	quote, fallbackErr := s.fallback.GetRate(ctx, from, to)
	if fallbackErr != nil {
		return nil, fmt.Errorf("%w: remote: %v, fallback: %v", domain.ErrRateUnavailable, remoteErr, fallbackErr)
	}

	return quote, nil
}

func (c *rateCache) Get(key string) (domain.RateQuote, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, exists := c.quotes[key]
	if !exists || time.Since(cached.cachedAt) > c.ttl {
		return domain.RateQuote{}, false
	}

	return cached.quote, true
}

func (c *rateCache) Set(key string, quote domain.RateQuote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.quotes[key] = cachedQuote{
		quote:    quote,
		cachedAt: time.Now(),
	}
}
