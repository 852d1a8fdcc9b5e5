package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-catalog-admin/internal/config"
	"github.com/MKhiriev/go-catalog-admin/internal/crypto"
	"github.com/MKhiriev/go-catalog-admin/internal/handler"
	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/internal/server"
	"github.com/MKhiriev/go-catalog-admin/internal/service"
	"github.com/MKhiriev/go-catalog-admin/internal/store"
	"github.com/MKhiriev/go-catalog-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("catalog-admin-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// the linker-provided version wins over APP_VERSION
	if buildVersion == "" {
		buildVersion = cfg.App.Version
	}
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Bool("require_auth", cfg.App.RequireAuth).
		Bool("auto_migrate", cfg.Storage.DB.AutoMigrate).
		Msg("received configs")

	if cfg.UsesDevelopmentSignKey() {
		log.Warn().Msg("APP_TOKEN_SIGN_KEY is not set: session tokens are signed with the built-in development key, never run like this in production")
	}

	ctx := context.Background()
	db, err := store.NewConnectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.AutoMigrate {
		if err = db.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("error migrating database")
		}
	}

	hasher, err := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating password hasher")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, hasher, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
