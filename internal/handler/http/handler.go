package http

import (
	"time"

	"github.com/MKhiriev/what-to-cook/internal/config"
	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/internal/metrics"
	"github.com/MKhiriev/what-to-cook/internal/service"
	"github.com/MKhiriev/what-to-cook/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	traceIDs *utils.UUIDGenerator

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	// maxUploadSize is the largest accepted profile picture request body.
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		traceIDs:       utils.NewUUIDGenerator(),
		requestTimeout: cfg.RequestTimeout,
		maxUploadSize:  cfg.MaxUploadSize,
		logger:         logger,
	}
}
