package http

import (
	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/session"
	"github.com/MKhiriev/go-shop-api/internal/validators"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager

	// validator checks input that never reaches a service, like items of
	// anonymous session carts.
	validator validators.Validator

	// acmeChallengeResult is served verbatim on the ACME challenge route.
	acmeChallengeResult string

	multipartMaxMemory int64
	server             config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:            services,
		sessions:            sessions,
		validator:           validators.NewShopValidator(),
		acmeChallengeResult: cfg.AcmeChallengeResult,
		multipartMaxMemory:  cfg.Server.MultipartMaxMemory,
		server:              cfg.Server,
		logger:              logger,
	}
}
