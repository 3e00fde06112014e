// Package config provides configuration loading, merging, and validation
// facilities for the dispatch server and its token issuer.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty by every source receive package defaults (see
// [DefaultHTTPAddress] and friends).
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetIssuerConfig] for the token issuer.
package config
