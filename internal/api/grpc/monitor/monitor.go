// Package monitor keeps the gRPC health status in line with database reachability.
package monitor

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/coinvest-server/internal/logger"
)

// ServiceName is the health service name reported alongside the overall "" entry.
const ServiceName = "coinvest.API"

type Pinger interface {
	Ping(ctx context.Context) error
}

type Monitor struct {
	pinger   Pinger
	health   *health.Server
	interval time.Duration
	timeout  time.Duration
	logger   *logger.Logger
}

func NewMonitor(pinger Pinger, health *health.Server, interval, timeout time.Duration, logger *logger.Logger) *Monitor {
	return &Monitor{
		pinger:   pinger,
		health:   health,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// Check pings the database once and publishes the result.
func (m *Monitor) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	pingCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := m.pinger.Ping(pingCtx); err != nil {
		m.logger.Warn("Health monitor: database ping failed", "error", err.Error())
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	m.health.SetServingStatus("", status)
	m.health.SetServingStatus(ServiceName, status)

	return status
}

// Run checks every interval until ctx is done, then marks every service
// NOT_SERVING. Later status updates are ignored.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			m.health.Shutdown()
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}
