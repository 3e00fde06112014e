// Package server wires and runs the application's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles, including
// startup, TLS material loading, signal handling, and graceful shutdown of
// all enabled transports. Without TLS the HTTP server speaks HTTP/1.1 and
// cleartext HTTP/2 (h2c); with TLS it negotiates HTTP/2 through ALPN.
package server
