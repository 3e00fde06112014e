package config

import (
	"fmt"
	"time"
)

// DefaultTokenDuration is the lifetime of minted tokens when none is
// configured.
const DefaultTokenDuration = time.Hour

// IssuerConfig is the token issuer view assembled from [StructuredConfig].
type IssuerConfig struct {
	// SignKey is the HMAC secret tokens are signed with.
	SignKey string
	// Issuer is written into the "iss" claim.
	Issuer string
	// Duration is the token lifetime.
	Duration time.Duration
}

// GetIssuerConfig builds and validates the token issuer view from environment
// variables and, when jsonPath (or the CONFIG variable) names one, a JSON
// file. Command-line flags are left to the caller.
func GetIssuerConfig(jsonPath string) (*IssuerConfig, error) {
	b := newConfigBuilder().withEnv()
	if jsonPath != "" {
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: jsonPath})
	}

	cfg, err := b.withJSON().merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	issuerCfg := &IssuerConfig{
		SignKey:  cfg.App.TokenSignKey,
		Issuer:   cfg.App.TokenIssuer,
		Duration: cfg.App.TokenDuration,
	}
	if issuerCfg.Duration == 0 {
		issuerCfg.Duration = DefaultTokenDuration
	}

	return issuerCfg, issuerCfg.validate()
}
