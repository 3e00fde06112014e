package handler

import (
	"github.com/MKhiriev/go-dispatch/internal/config"
	"github.com/MKhiriev/go-dispatch/internal/handler/grpc"
	"github.com/MKhiriev/go-dispatch/internal/handler/http"
	"github.com/MKhiriev/go-dispatch/internal/logger"
	"github.com/MKhiriev/go-dispatch/internal/router"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the transport handler for every configured address:
// HTTP dispatches into r, gRPC reports health.
func NewHandlers(r *router.Router, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(r, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
