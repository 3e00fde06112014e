// Command token mints a bearer token accepted by the dispatch server's
// protected routes.
//
//	APP_TOKEN_SIGN_KEY=secret APP_TOKEN_ISSUER=dispatch token -sub alice -d 24h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-dispatch/internal/config"
	"github.com/MKhiriev/go-dispatch/internal/hooks"
)

func main() {
	var (
		subject    string
		configPath string
		duration   time.Duration
	)

	fs := flag.NewFlagSet("token", flag.ExitOnError)
	fs.StringVar(&subject, "sub", "", "token subject (required)")
	fs.StringVar(&configPath, "c", "", "path to the JSON config file")
	fs.DurationVar(&duration, "d", 0, "token lifetime, overrides the configured one")
	_ = fs.Parse(os.Args[1:])

	if subject == "" {
		fmt.Fprintln(os.Stderr, "-sub is required")
		fs.Usage()
		os.Exit(2)
	}

	cfg, err := config.GetIssuerConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	if duration > 0 {
		cfg.Duration = duration
	}

	token, err := hooks.IssueToken(subject, cfg.Issuer, cfg.Duration, cfg.SignKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error issuing token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
