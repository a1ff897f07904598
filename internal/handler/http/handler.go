package http

import (
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
)

type Handler struct {
	services *service.Services
	sessions *cookieSession
	metrics  *httpMetrics

	cfg config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: newCookieSession(cfg.SecureCookies),
		metrics:  newHTTPMetrics(),
		cfg:      cfg,
		logger:   logger,
	}
}
