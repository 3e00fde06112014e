// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied to fields left empty by every configuration source.
const (
	DefaultHTTPAddress       = ":8888"
	DefaultMaxBodyBytes      = 10 << 20
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultLogLevel          = "info"
)

// StructuredConfig is the top-level configuration container for the dispatch
// server. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, log level and the
	// bearer token parameters used by the authorization pre-hook.
	App App `envPrefix:"APP_"`

	// Server holds listener addresses, limits and TLS material.
	Server Server `envPrefix:"SERVER_"`

	// Router holds settings of the route table hooks.
	Router Router `envPrefix:"ROUTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by the /api/version route when no build version
	// was linked in.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TokenSignKey is the HMAC secret used to sign and verify bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim issued and expected in bearer tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens minted by cmd/token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds network and transport settings.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP(S) listener binds to.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the "host:port" of the gRPC health endpoint. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// MaxBodyBytes caps the buffered request body.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`

	// ReadHeaderTimeout bounds reading the request line and headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// TLS enables HTTPS when both files are set.
	TLS TLS `envPrefix:"TLS_"`
}

// TLS points at the PEM files of the server certificate.
type TLS struct {
	// CertFile is the PEM certificate chain.
	// Env: SERVER_TLS_CERT_FILE
	CertFile string `env:"CERT_FILE"`

	// KeyFile is the PEM private key.
	// Env: SERVER_TLS_KEY_FILE
	KeyFile string `env:"KEY_FILE"`

	// KeyPassword decrypts KeyFile when it holds an encrypted PEM block.
	// Env: SERVER_TLS_KEY_PASSWORD
	KeyPassword string `env:"KEY_PASSWORD"`
}

// Enabled reports whether a certificate and key are configured.
func (t TLS) Enabled() bool {
	return t.CertFile != "" && t.KeyFile != ""
}

// Router holds route table settings.
type Router struct {
	// ProtectedPrefixes lists path prefixes that require a bearer token.
	// Env: ROUTER_PROTECTED_PREFIXES (comma separated)
	ProtectedPrefixes []string `env:"PROTECTED_PREFIXES" envSeparator:","`
}

// Redacted returns a copy of cfg with secrets masked, suitable for logging.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	const mask = "******"

	if cfg.App.TokenSignKey != "" {
		cfg.App.TokenSignKey = mask
	}
	if cfg.Server.TLS.KeyPassword != "" {
		cfg.Server.TLS.KeyPassword = mask
	}
	cfg.Router.ProtectedPrefixes = append([]string(nil), cfg.Router.ProtectedPrefixes...)

	return cfg
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields still empty afterwards get the package defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
