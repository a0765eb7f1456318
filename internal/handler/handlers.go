// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/what-to-cook/internal/config"
	"github.com/MKhiriev/what-to-cook/internal/handler/http"
	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/internal/metrics"
	"github.com/MKhiriev/what-to-cook/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, m, cfg, logger),
	}, nil
}
