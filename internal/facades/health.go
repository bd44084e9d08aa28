package facades

import (
	"context"

	"github.com/sbilibin2017/linkvault/internal/logger"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthGRPCFacade queries a server's gRPC health service.
type HealthGRPCFacade struct {
	client healthpb.HealthClient
}

// NewHealthGRPCFacade creates a new facade with a gRPC client.
func NewHealthGRPCFacade(client healthpb.HealthClient) *HealthGRPCFacade {
	return &HealthGRPCFacade{client: client}
}

// NewHealthGRPCFacadeFromConn creates a facade over an existing connection.
func NewHealthGRPCFacadeFromConn(conn grpc.ClientConnInterface) *HealthGRPCFacade {
	return NewHealthGRPCFacade(healthpb.NewHealthClient(conn))
}

// Status returns the serving status of service ("" for the whole server),
// e.g. "SERVING" or "NOT_SERVING".
func (f *HealthGRPCFacade) Status(ctx context.Context, service string) (string, error) {
	resp, err := f.client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		logger.Log.Errorw("failed to check health via gRPC", "service", service, "error", err)
		return "", err
	}

	return resp.GetStatus().String(), nil
}

// Serving reports whether the service answers SERVING.
func (f *HealthGRPCFacade) Serving(ctx context.Context, service string) (bool, error) {
	status, err := f.Status(ctx, service)
	if err != nil {
		return false, err
	}
	return status == healthpb.HealthCheckResponse_SERVING.String(), nil
}
