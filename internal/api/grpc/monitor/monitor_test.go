package monitor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/coinvest-server/internal/testutil"
)

type fakePinger struct {
	err   atomic.Value
	calls atomic.Int32
}

func (p *fakePinger) Ping(_ context.Context) error {
	p.calls.Add(1)
	if err, ok := p.err.Load().(error); ok {
		return err
	}
	return nil
}

func statusOf(t *testing.T, hs *health.Server, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestMonitor_Check(t *testing.T) {
	hs := health.NewServer()
	pinger := &fakePinger{}
	m := NewMonitor(pinger, hs, time.Minute, time.Second, testutil.MakeNoopLogger())

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, m.Check(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, statusOf(t, hs, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, statusOf(t, hs, ServiceName))

	pinger.err.Store(errors.New("connection refused"))

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, m.Check(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, statusOf(t, hs, ServiceName))
}

func TestMonitor_Run(t *testing.T) {
	hs := health.NewServer()
	pinger := &fakePinger{}
	m := NewMonitor(pinger, hs, 5*time.Millisecond, time.Second, testutil.MakeNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return pinger.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, statusOf(t, hs, ""))

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, statusOf(t, hs, ""))
}
