// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Every violated rule
// is reported, joined into one error.
func (cfg *StructuredConfig) validate() error {
	var err error

	if (cfg.Server.TLS.CertFile == "") != (cfg.Server.TLS.KeyFile == "") {
		err = errors.Join(err, ErrIncompleteTLSConfig)
	}

	if len(cfg.Router.ProtectedPrefixes) > 0 && (cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "") {
		err = errors.Join(err, ErrMissingTokenSettings)
	}

	if cfg.Server.MaxBodyBytes < 0 {
		err = errors.Join(err, fmt.Errorf("%w: max body bytes %d is negative", ErrInvalidServerConfigs, cfg.Server.MaxBodyBytes))
	}

	if cfg.Server.ReadHeaderTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		err = errors.Join(err, fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs))
	}

	if cfg.App.LogLevel != "" {
		if _, parseErr := zerolog.ParseLevel(cfg.App.LogLevel); parseErr != nil {
			err = errors.Join(err, fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.App.LogLevel))
		}
	}

	return err
}

func (cfg *IssuerConfig) validate() error {
	if cfg.SignKey == "" || cfg.Issuer == "" {
		return ErrMissingTokenSettings
	}

	if cfg.Duration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrMissingTokenSettings)
	}

	return nil
}
