package http

import (
	"github.com/Chakshu1409/fnp-integrations/internal/logger"
	"github.com/Chakshu1409/fnp-integrations/internal/service"
	"github.com/Chakshu1409/fnp-integrations/internal/utils"
)

type Handler struct {
	services *service.Services

	// authEnabled guards /api/lalamove with the bearer-token middleware.
	authEnabled bool
	traceIDs    utils.IDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, authEnabled bool, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth_enabled", authEnabled).Msg("http handler created")
	return &Handler{
		services:    services,
		authEnabled: authEnabled,
		traceIDs:    utils.NewUUIDGenerator(),
		logger:      logger,
	}
}
