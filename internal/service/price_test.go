package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/coinvest-server/internal/testutil"
)

type stubSource struct {
	name  string
	price float64
	err   error
	calls atomic.Int32
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context) (float64, error) {
	s.calls.Add(1)
	return s.price, s.err
}

func TestPrice_FirstSourceWins(t *testing.T) {
	a := &stubSource{name: "a", price: 100}
	b := &stubSource{name: "b", price: 200}

	s := NewPrice([]PriceSource{a, b}, time.Second, time.Minute, testutil.MakeNoopLogger())

	assert.Equal(t, 100.0, s.BTC(context.Background()))
	assert.EqualValues(t, 0, b.calls.Load())
}

func TestPrice_FallsThroughSources(t *testing.T) {
	a := &stubSource{name: "a", err: errors.New("down")}
	b := &stubSource{name: "b", price: 200}

	s := NewPrice([]PriceSource{a, b}, time.Second, time.Minute, testutil.MakeNoopLogger())

	assert.Equal(t, 200.0, s.BTC(context.Background()))
}

func TestPrice_StaticFallback(t *testing.T) {
	a := &stubSource{name: "a", err: errors.New("down")}

	s := NewPrice([]PriceSource{a}, time.Second, time.Minute, testutil.MakeNoopLogger())

	assert.Equal(t, FallbackBTCPrice, s.BTC(context.Background()))
	assert.Equal(t, FallbackBTCPrice, s.BTC(context.Background()))
	assert.EqualValues(t, 2, a.calls.Load())
}

// ctxSource fails when the context it is handed is already done.
type ctxSource struct {
	price float64
}

func (s ctxSource) Name() string { return "ctx" }

func (s ctxSource) Fetch(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.price, nil
}

func TestPrice_CallerCancellationDoesNotAbortSharedFetch(t *testing.T) {
	s := NewPrice([]PriceSource{ctxSource{price: 300}}, time.Second, time.Minute, testutil.MakeNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, 300.0, s.BTC(ctx))
	assert.Equal(t, 300.0, s.BTC(context.Background()), "result was cached")
}

func TestPrice_Cache(t *testing.T) {
	a := &stubSource{name: "a", price: 100}
	now := time.Unix(1_700_000_000, 0)

	s := NewPrice([]PriceSource{a}, time.Second, time.Minute, testutil.MakeNoopLogger())
	s.now = func() time.Time { return now }

	s.BTC(context.Background())
	s.BTC(context.Background())
	assert.EqualValues(t, 1, a.calls.Load())

	now = now.Add(time.Minute)
	s.BTC(context.Background())
	assert.EqualValues(t, 2, a.calls.Load())
}

func TestHTTPSources(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/coindesk", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"bpi":{"EUR":{"code":"EUR","rate_float":91234.5}}}`))
	})
	mux.HandleFunc("/binance", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"symbol":"BTCEUR","price":"90000.12000000"}`))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	mux.HandleFunc("/garbage", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"price":"NaN-ish"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()

	price, err := NewCoinDeskSource(srv.Client(), srv.URL+"/coindesk").Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 91234.5, price)

	price, err = NewBinanceSource(srv.Client(), srv.URL+"/binance").Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90000.12, price)

	_, err = NewBinanceSource(srv.Client(), srv.URL+"/broken").Fetch(ctx)
	assert.Error(t, err)

	_, err = NewBinanceSource(srv.Client(), srv.URL+"/garbage").Fetch(ctx)
	assert.Error(t, err)

	_, err = NewCoinDeskSource(srv.Client(), srv.URL+"/binance").Fetch(ctx)
	assert.Error(t, err, "zero price is rejected")
}
