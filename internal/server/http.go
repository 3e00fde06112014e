package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/go-dispatch/internal/config"
	"github.com/MKhiriev/go-dispatch/internal/logger"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

type httpServer struct {
	server   *http.Server
	listener net.Listener
	tls      bool

	logger *logger.Logger
}

// newHTTPServer binds cfg.HTTPAddress. With TLS configured it serves HTTPS
// and negotiates HTTP/2 through ALPN; otherwise it serves HTTP/1.1 and h2c.
func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (*httpServer, error) {
	srv := &http.Server{
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	h2 := &http2.Server{}

	useTLS := cfg.TLS.Enabled()
	if useTLS {
		tlsConfig, err := loadTLSConfig(cfg.TLS)
		if err != nil {
			return nil, fmt.Errorf("error loading TLS configuration: %w", err)
		}
		srv.TLSConfig = tlsConfig
		srv.Handler = handler

		if err := http2.ConfigureServer(srv, h2); err != nil {
			return nil, fmt.Errorf("error configuring HTTP/2: %w", err)
		}
	} else {
		srv.Handler = h2c.NewHandler(handler, h2)
	}

	listener, err := net.Listen("tcp", cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.HTTPAddress, err)
	}

	return &httpServer{
		server:   srv,
		listener: listener,
		tls:      useTLS,
		logger:   logger,
	}, nil
}

func (h *httpServer) Addr() net.Addr {
	return h.listener.Addr()
}

func (h *httpServer) RunServer() {
	h.logger.Info().Str("address", h.Addr().String()).Bool("tls", h.tls).Msg("HTTP server listening")

	var err error
	if h.tls {
		// certificates come from TLSConfig
		err = h.server.ServeTLS(h.listener, "", "")
	} else {
		err = h.server.Serve(h.listener)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Msg("HTTP server Serve")
	}
}

func (h *httpServer) Shutdown(ctx context.Context) {
	h.logger.Info().Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}
