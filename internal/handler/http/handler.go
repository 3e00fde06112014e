package http

import (
	"github.com/MKhiriev/go-dispatch/internal/config"
	"github.com/MKhiriev/go-dispatch/internal/logger"
	"github.com/MKhiriev/go-dispatch/internal/router"
)

type Handler struct {
	router *router.Router

	maxBodyBytes int64

	logger *logger.Logger
}

func NewHandler(router *router.Router, cfg config.Server, logger *logger.Logger) *Handler {
	maxBodyBytes := cfg.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = config.DefaultMaxBodyBytes
	}

	logger.Info().Int64("max_body_bytes", maxBodyBytes).Msg("http handler created")
	return &Handler{
		router:       router,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}
