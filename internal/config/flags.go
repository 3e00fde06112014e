package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// prefixList collects repeated or comma separated -protected values.
type prefixList []string

func (p *prefixList) String() string {
	return strings.Join(*p, ",")
}

func (p *prefixList) Set(s string) error {
	for prefix := range strings.SplitSeq(s, ",") {
		if prefix = strings.TrimSpace(prefix); prefix != "" {
			*p = append(*p, prefix)
		}
	}
	return nil
}

// parseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-c/-config json file path with configs
//	-log-level log level (debug, info, warn, error)
//	-app-version version reported by /api/version
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-tls-cert PEM certificate file
//	-tls-key PEM private key file
//	-tls-key-password private key password
//	-max-body-bytes request body limit
//	-read-header-timeout header read timeout (e.g., "5s")
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s")
//	-protected path prefix requiring a bearer token (repeatable)
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var protected prefixList
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("dispatch", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health server address host:port")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.App.Version, "app-version", "", "Application version")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&cfg.Server.TLS.CertFile, "tls-cert", "", "PEM certificate file")
	fs.StringVar(&cfg.Server.TLS.KeyFile, "tls-key", "", "PEM private key file")
	fs.StringVar(&cfg.Server.TLS.KeyPassword, "tls-key-password", "", "Private key password")
	fs.Int64Var(&cfg.Server.MaxBodyBytes, "max-body-bytes", 0, "Request body limit in bytes")
	fs.DurationVar(&cfg.Server.ReadHeaderTimeout, "read-header-timeout", 0, "Header read timeout (e.g., 5s)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.Var(&protected, "protected", "Path prefix requiring a bearer token (repeatable)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()
	if len(protected) > 0 {
		cfg.Router.ProtectedPrefixes = protected
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host binds every interface. The host must be
// "localhost" or a literal IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

var (
	_ flag.Value = (*NetAddress)(nil)
	_ flag.Value = (*prefixList)(nil)
)
