package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/Chakshu1409/fnp-integrations/internal/adapter"
	"github.com/Chakshu1409/fnp-integrations/internal/config"
	"github.com/Chakshu1409/fnp-integrations/internal/handler"
	"github.com/Chakshu1409/fnp-integrations/internal/logger"
	"github.com/Chakshu1409/fnp-integrations/internal/restclient"
	"github.com/Chakshu1409/fnp-integrations/internal/server"
	"github.com/Chakshu1409/fnp-integrations/internal/service"
	"github.com/Chakshu1409/fnp-integrations/internal/store"
	"github.com/Chakshu1409/fnp-integrations/internal/utils"
	"github.com/Chakshu1409/fnp-integrations/models"
)

// Set through -ldflags "-X main.buildVersion=...". An unstamped binary
// reports itself as a dev build unless APP_VERSION is set.
var (
	buildVersion = "dev"
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("fnp-integrations")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if !cfg.App.DebugMode {
		log = log.WithLevel(zerolog.InfoLevel)
	}

	log.Debug().Str("profile", cfg.App.Profile).Msg("received configs")

	if subject := cfg.Security.IssueTokenFor; subject != "" {
		auth := service.NewAuthService(cfg.Security, log)
		if err = issueToken(context.Background(), auth, subject, os.Stdout); err != nil {
			log.Fatal().Err(err).Str("subject", subject).Msg("error issuing token")
		}
		return
	}

	fmt.Print(build)

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	dispatcher := restclient.NewDispatcher(utils.NewHTTPClient(cfg.Dispatcher), log)

	provider, err := adapter.NewLalamoveAdapter(dispatcher, cfg.Lalamove, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating delivery provider")
	}

	services, err := service.NewServices(storages, provider, dispatcher, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
