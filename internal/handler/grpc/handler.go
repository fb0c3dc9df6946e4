// Package grpc exposes the gateway's gRPC surface: the standard
// grpc.health.v1 service used by orchestrators to probe readiness.
package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/Chakshu1409/fnp-integrations/internal/logger"
	"github.com/Chakshu1409/fnp-integrations/internal/service"
	"github.com/Chakshu1409/fnp-integrations/internal/utils"
)

// ServiceName is the health-checked service name of the gateway. The empty
// name reports overall server health.
const ServiceName = "fnp.integrations.Gateway"

const traceIDMetadataKey = "x-trace-id"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server
	traceIDs utils.IDGenerator

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health service reports SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Handler{
		services: services,
		health:   hs,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every service to NOT_SERVING so probes fail while the
// server drains.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLoggingInterceptor attaches a request logger carrying the trace id
// (from "x-trace-id" metadata or generated) and logs every call.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = h.traceIDs.Generate()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = context.WithValue(l.WithContext(ctx), utils.TraceIDCtxKey, traceID)

	start := time.Now()
	resp, err := next(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("rpc served")

	return resp, err
}
