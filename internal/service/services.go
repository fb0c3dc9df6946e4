package service

import (
	"github.com/Chakshu1409/fnp-integrations/internal/adapter"
	"github.com/Chakshu1409/fnp-integrations/internal/config"
	"github.com/Chakshu1409/fnp-integrations/internal/logger"
	"github.com/Chakshu1409/fnp-integrations/internal/restclient"
	"github.com/Chakshu1409/fnp-integrations/internal/store"
	"github.com/Chakshu1409/fnp-integrations/models"
)

type Services struct {
	DeliveryService    DeliveryService
	ExternalAPIService ExternalAPIService
	AppInfoService     AppInfoService
	AuthService        AuthService
}

// NewServices builds the service layer on top of the outbound dispatcher,
// the delivery provider and the ledger.
func NewServices(
	storages *store.Storages,
	provider adapter.DeliveryProvider,
	dispatcher *restclient.Dispatcher,
	cfg config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, build, storages.LedgerEnabled, logger)
	if err != nil {
		return nil, err
	}

	delivery := NewDeliveryValidationService().
		Wrap(NewDeliveryService(provider, storages.DispatchRepository, logger))

	return &Services{
		DeliveryService:    delivery,
		ExternalAPIService: NewExternalAPIService(dispatcher, cfg.ExternalAPI, logger),
		AppInfoService:     appInfo,
		AuthService:        NewAuthService(cfg.Security, logger),
	}, nil
}
