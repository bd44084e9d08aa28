// Package health exposes the standard gRPC health service backed by database pings.
package health

import (
	"context"
	"time"

	"github.com/sbilibin2017/linkvault/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service reported next to the overall ("") status.
const ServiceName = "linkvault"

// Pinger checks that the store answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Checker keeps the health server in sync with the database.
type Checker struct {
	server   *health.Server
	db       Pinger
	interval time.Duration
}

// NewChecker creates a checker. The status stays NOT_SERVING until the first check.
func NewChecker(db Pinger, interval time.Duration) *Checker {
	c := &Checker{
		server:   health.NewServer(),
		db:       db,
		interval: interval,
	}
	c.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return c
}

// Register adds the health service to a gRPC server.
func (c *Checker) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, c.server)
}

// Check pings the database once and publishes the result.
func (c *Checker) Check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	if err := c.db.PingContext(ctx); err != nil {
		logger.Log.Warnw("database ping failed", "error", err)
		c.set(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	c.set(healthpb.HealthCheckResponse_SERVING)
}

// Run checks on every tick until ctx is done, then reports NOT_SERVING for good.
func (c *Checker) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			c.server.Shutdown()
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}

func (c *Checker) set(status healthpb.HealthCheckResponse_ServingStatus) {
	c.server.SetServingStatus("", status)
	c.server.SetServingStatus(ServiceName, status)
}
