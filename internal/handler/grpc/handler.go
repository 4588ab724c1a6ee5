// Package grpc exposes the gRPC side of the API. It currently serves the
// standard gRPC health checking protocol so that orchestrators can probe
// the process on a dedicated port.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the health-check service name reported next to the
// server-wide ("") status.
const ServiceName = "go-shop-api"

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	services *service.Services
	health   *health.Server
	logger   *logger.Logger
}

// NewHandler constructs a [Handler]. Both the server-wide and the
// [ServiceName] status start as NOT_SERVING until [Handler.SetServing] is
// called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to registrar.
func (h *Handler) Register(registrar grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(registrar, h.health)
}

// SetServing marks the process healthy.
func (h *Handler) SetServing() {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Shutdown marks every service NOT_SERVING and ignores later status
// updates, so watchers observe the drain before the server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// UnaryLogger logs every unary call with its method, status code and
// duration, and attaches the logger to the call context.
func (h *Handler) UnaryLogger(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	log := h.logger.GetChildLogger()
	ctx = log.WithContext(ctx)

	resp, err := next(ctx, req)

	log.Debug().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("gRPC call")

	return resp, err
}
