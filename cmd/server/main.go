package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-dispatch/internal/config"
	"github.com/MKhiriev/go-dispatch/internal/handler"
	"github.com/MKhiriev/go-dispatch/internal/hooks"
	"github.com/MKhiriev/go-dispatch/internal/logger"
	"github.com/MKhiriev/go-dispatch/internal/router"
	"github.com/MKhiriev/go-dispatch/internal/routes"
	"github.com/MKhiriev/go-dispatch/internal/server"
	"github.com/MKhiriev/go-dispatch/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("dispatch-server")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if buildVersion == "" {
		buildVersion = cfg.App.Version
	}
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(info)

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	r := router.New(
		router.WithLogger(log),
		router.WithPreHook(hooks.Chain(
			hooks.BearerAuth(
				hooks.NewJWTParser(cfg.App.TokenSignKey, cfg.App.TokenIssuer),
				cfg.Router.ProtectedPrefixes,
				log,
			),
		)),
		router.WithPostHook(hooks.Audit(log)),
	)
	routes.Register(r, info)

	handlers, err := handler.NewHandlers(r, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
