package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dtroode/coinvest-server/internal/logger"
)

const (
	CoinDeskURL = "https://api.coindesk.com/v1/bpi/currentprice/EUR.json"
	BinanceURL  = "https://api.binance.com/api/v3/ticker/price?symbol=BTCEUR"

	// FallbackBTCPrice is served when every upstream fails.
	FallbackBTCPrice = 95432.10
)

// PriceSource fetches the current BTC/EUR rate from one upstream.
type PriceSource interface {
	Name() string
	Fetch(ctx context.Context) (float64, error)
}

type Price struct {
	sources []PriceSource
	timeout time.Duration
	ttl     time.Duration
	logger  *logger.Logger
	now     func() time.Time

	group     singleflight.Group
	mu        sync.Mutex
	cached    float64
	expiresAt time.Time
}

// NewPrice tries sources in order, each bounded by timeout, and caches the
// first success for ttl.
func NewPrice(sources []PriceSource, timeout, ttl time.Duration, logger *logger.Logger) *Price {
	return &Price{
		sources: sources,
		timeout: timeout,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
	}
}

// BTC returns the current price. Upstream failures are logged and never
// surfaced; the static fallback is returned instead and not cached.
func (s *Price) BTC(ctx context.Context) float64 {
	s.mu.Lock()
	if s.now().Before(s.expiresAt) {
		price := s.cached
		s.mu.Unlock()
		return price
	}
	s.mu.Unlock()

	// The shared fetch outlives any single caller; s.timeout still bounds it.
	fetchCtx := context.WithoutCancel(ctx)
	v, _, _ := s.group.Do("btc", func() (any, error) {
		return s.fetch(fetchCtx), nil
	})
	return v.(float64)
}

func (s *Price) fetch(ctx context.Context) float64 {
	for _, src := range s.sources {
		fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
		price, err := src.Fetch(fetchCtx)
		cancel()
		if err != nil {
			s.logger.Warn("Price service: upstream failed",
				"source", src.Name(),
				"error", err.Error())
			continue
		}

		s.mu.Lock()
		s.cached = price
		s.expiresAt = s.now().Add(s.ttl)
		s.mu.Unlock()

		return price
	}

	s.logger.Warn("Price service: all upstreams failed, using fallback price")
	return FallbackBTCPrice
}

// HTTPSource reads a JSON ticker and extracts the price with decode.
type HTTPSource struct {
	name   string
	url    string
	client *http.Client
	decode func(body *json.Decoder) (float64, error)
}

func (s *HTTPSource) Name() string {
	return s.name
}

func (s *HTTPSource) Fetch(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	price, err := s.decode(json.NewDecoder(resp.Body))
	if err != nil {
		return 0, fmt.Errorf("failed to decode price: %w", err)
	}
	if price <= 0 {
		return 0, fmt.Errorf("non-positive price %v", price)
	}
	return price, nil
}

// NewCoinDeskSource reads bpi.EUR.rate_float.
func NewCoinDeskSource(client *http.Client, url string) *HTTPSource {
	return &HTTPSource{
		name:   "coindesk",
		url:    url,
		client: client,
		decode: func(d *json.Decoder) (float64, error) {
			var body struct {
				BPI struct {
					EUR struct {
						RateFloat float64 `json:"rate_float"`
					} `json:"EUR"`
				} `json:"bpi"`
			}
			if err := d.Decode(&body); err != nil {
				return 0, err
			}
			return body.BPI.EUR.RateFloat, nil
		},
	}
}

// NewBinanceSource reads the string price field of the ticker endpoint.
func NewBinanceSource(client *http.Client, url string) *HTTPSource {
	return &HTTPSource{
		name:   "binance",
		url:    url,
		client: client,
		decode: func(d *json.Decoder) (float64, error) {
			var body struct {
				Price string `json:"price"`
			}
			if err := d.Decode(&body); err != nil {
				return 0, err
			}
			return strconv.ParseFloat(body.Price, 64)
		},
	}
}
