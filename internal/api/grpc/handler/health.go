package handler

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/storefront/internal/logger"
)

// ServiceName is the health service name reported next to the overall status.
const ServiceName = "storefront"

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthWatcher keeps the gRPC health status in line with the database.
type HealthWatcher struct {
	server   *health.Server
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration
	logger   *logger.Logger
}

// NewHealthWatcher creates a HealthWatcher. Both services start as
// NOT_SERVING until the first successful check.
func NewHealthWatcher(server *health.Server, pinger Pinger, interval time.Duration, logger *logger.Logger) *HealthWatcher {
	server.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	server.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	timeout := interval
	if timeout <= 0 || timeout > 5*time.Second {
		timeout = 5 * time.Second
	}

	return &HealthWatcher{
		server:   server,
		pinger:   pinger,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// Check pings the database once and publishes the result.
func (w *HealthWatcher) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := w.pinger.Ping(ctx); err != nil {
		w.logger.Warn("Health watcher: database ping failed",
			"error", err.Error())
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	w.server.SetServingStatus("", status)
	w.server.SetServingStatus(ServiceName, status)

	return status
}

// Run checks on every interval until ctx is done, then marks the server as
// shutting down so watchers see NOT_SERVING.
func (w *HealthWatcher) Run(ctx context.Context) {
	w.Check(ctx)

	if w.interval <= 0 {
		<-ctx.Done()
		w.server.Shutdown()
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.server.Shutdown()
			return
		case <-ticker.C:
			w.Check(ctx)
		}
	}
}
