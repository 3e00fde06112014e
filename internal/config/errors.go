package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [IssuerConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrIncompleteTLSConfig indicates that only one of the certificate and
	// key files was configured.
	ErrIncompleteTLSConfig = errors.New("tls requires both a certificate and a key file")
	// ErrMissingTokenSettings indicates that bearer tokens are needed (by
	// protected prefixes or by the issuer tool) but the sign key or issuer
	// is empty.
	ErrMissingTokenSettings = errors.New("token sign key and issuer are required")
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, a negative body limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogLevel indicates a log level name zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
