package service

import (
	"context"

	"github.com/Chakshu1409/fnp-integrations/internal/config"
	"github.com/Chakshu1409/fnp-integrations/internal/logger"
	"github.com/Chakshu1409/fnp-integrations/internal/restclient"
	"github.com/Chakshu1409/fnp-integrations/models"
)

const HealthStatusUp = "UP"

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService snapshots the non-secret parts of cfg. The version comes
// from cfg.App.Version, falling back to the linker-injected build version.
func NewAppInfoService(cfg config.StructuredConfig, build models.AppBuildInfo, ledgerEnabled bool, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.App.Version
	if version == "" {
		version = build.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.AppInfo{
			ApplicationName: cfg.App.Name,
			ActiveProfile:   cfg.App.Profile,
			Version:         version,
			BuildDate:       build.BuildDate(),
			BuildCommit:     build.BuildCommit(),
			DebugMode:       cfg.App.DebugMode,
			APIBaseURL:      cfg.ExternalAPI.BaseURL,
			APITimeout:      cfg.Dispatcher.RequestTimeout.String(),
			APIRetryCount:   restclient.MaxAttempts - 1,
			SecurityEnabled: cfg.Security.Enabled,
			JWTExpiration:   cfg.Security.TokenDuration.String(),
			ServerAddress:   cfg.Server.HTTPAddress,
			LalamoveBaseURL: cfg.Lalamove.BaseURL,
			LalamoveMarket:  cfg.Lalamove.Market,
			LedgerEnabled:   ledgerEnabled,
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}

func (s *appInfoService) GetHealth(ctx context.Context) models.HealthInfo {
	return models.HealthInfo{
		Status:        HealthStatusUp,
		Profile:       s.info.ActiveProfile,
		Application:   s.info.ApplicationName,
		ServerAddress: s.info.ServerAddress,
	}
}
