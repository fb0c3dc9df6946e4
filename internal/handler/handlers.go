package handler

import (
	"github.com/Chakshu1409/fnp-integrations/internal/config"
	"github.com/Chakshu1409/fnp-integrations/internal/handler/grpc"
	"github.com/Chakshu1409/fnp-integrations/internal/handler/http"
	"github.com/Chakshu1409/fnp-integrations/internal/logger"
	"github.com/Chakshu1409/fnp-integrations/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler for every configured listen
// address.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Security.Enabled, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
