package grpcapi

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const ServiceName = "storefront"

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthReporter keeps the storefront service status in sync with the database.
type HealthReporter struct {
	server   *health.Server
	db       Pinger
	interval time.Duration
}

func NewHealthReporter(db Pinger, interval time.Duration) *HealthReporter {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &HealthReporter{
		server:   health.NewServer(),
		db:       db,
		interval: interval,
	}
}

func (h *HealthReporter) Server() *health.Server {
	return h.server
}

// Check pings the database once and publishes the result.
func (h *HealthReporter) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.db.PingContext(pingCtx); err != nil {
		log.Warn().Err(err).Msg("database ping failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.server.SetServingStatus(ServiceName, status)
	h.server.SetServingStatus("", status)
	return status
}

// Run refreshes the status until ctx is done, then marks everything NOT_SERVING.
func (h *HealthReporter) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}
