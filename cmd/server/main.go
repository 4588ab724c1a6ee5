package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/handler"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/server"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/session"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/workers"
	"github.com/MKhiriev/go-shop-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const connectTimeout = 30 * time.Second

func main() {
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-shop-api").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLoggerWithLevel("go-shop-api", cfg.App.LogLevel)
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("version", buildInfo.BuildVersion()).
		Msg("received configs")

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), connectTimeout)
	db, err := store.NewConnectPostgres(connectCtx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	redisClient, err := store.NewConnectRedis(connectCtx, cfg.Storage.Redis, log)
	cancelConnect()
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting redis")
	}
	defer redisClient.Close()

	storages := store.NewStorages(db, redisClient, cfg.Storage, log)
	services := service.NewServices(storages, cfg, log)
	sessions := session.NewManager(storages.SessionStorage, cfg.Session, log)

	handlers, err := handler.NewHandlers(services, sessions, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, cancel := context.WithCancel(context.Background())
	bg := workers.NewWorkers(services, cfg.Workers, log)
	bg.Run(ctx)

	runErr := srv.RunServer(ctx)
	cancel()
	bg.Wait()

	if runErr != nil {
		log.Error().Err(runErr).Msg("server stopped with error")
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
