// Package grpc implements the gRPC side of the server: the standard health
// service reporting whether the dispatcher is serving, server reflection,
// and a logging interceptor.
package grpc

import (
	"github.com/MKhiriev/go-dispatch/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service name of the dispatcher. The empty name
// reports the server as a whole.
const ServiceName = "dispatch.Router"

// Handler is the root gRPC transport handler.
//
// It owns the health state shared by every service name it reports on.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose services all start NOT_SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register installs the health and reflection services on s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// ServerOptions returns the options the gRPC server must be built with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withLogging),
	}
}

// SetServing marks the server and the dispatcher SERVING.
func (h *Handler) SetServing() {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	h.logger.Info().Msg("health status set to SERVING")
}

// SetNotServing marks everything NOT_SERVING for good; later status updates
// are ignored.
func (h *Handler) SetNotServing() {
	h.health.Shutdown()
	h.logger.Info().Msg("health status set to NOT_SERVING")
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
