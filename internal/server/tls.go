// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/MKhiriev/go-dispatch/internal/config"
)

// loadTLSConfig validates and loads the certificate pair named by cfg and
// returns a server config requiring TLS 1.2 or newer.
//
// Both files must exist, be regular files and be non-empty. A private key in
// a legacy encrypted PEM block ("Proc-Type: 4,ENCRYPTED") is decrypted with
// cfg.KeyPassword.
func loadTLSConfig(cfg config.TLS) (*tls.Config, error) {
	certPEM, err := readPEMFile(cfg.CertFile)
	if err != nil {
		return nil, fmt.Errorf("certificate: %w", err)
	}

	keyPEM, err := readPEMFile(cfg.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}

	keyPEM, err = decryptKey(keyPEM, cfg.KeyPassword)
	if err != nil {
		return nil, fmt.Errorf("private key %s: %w", cfg.KeyFile, err)
	}

	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return nil, fmt.Errorf("error loading key pair: %w", err)
	}

	return &tls.Config{
		MinVersion:   tls.VersionTLS12,
		Certificates: []tls.Certificate{cert},
	}, nil
}

// readPEMFile checks that path names a non-empty regular file and returns
// its content.
func readPEMFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTLSFileNotFound, path)
		}
		return nil, fmt.Errorf("error checking %s: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrTLSFileNotRegular, path)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTLSFileEmpty, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	return data, nil
}

// decryptKey returns keyPEM with its private key block decrypted. Keys that
// are not encrypted are returned unchanged.
func decryptKey(keyPEM []byte, password string) ([]byte, error) {
	rest := keyPEM
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			return nil, ErrTLSInvalidPEM
		}

		if !strings.HasSuffix(block.Type, "PRIVATE KEY") {
			continue
		}

		if block.Type == "ENCRYPTED PRIVATE KEY" {
			return nil, fmt.Errorf("%w: PKCS#8 encryption is not supported, convert the key to a legacy PEM encryption", ErrTLSKeyDecryption)
		}

		//nolint:staticcheck // legacy PEM encryption is the only one the standard library reads
		if !x509.IsEncryptedPEMBlock(block) {
			return keyPEM, nil
		}

		if password == "" {
			return nil, ErrTLSKeyPasswordRequired
		}

		//nolint:staticcheck
		der, err := x509.DecryptPEMBlock(block, []byte(password))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTLSKeyDecryption, err)
		}

		return pem.EncodeToMemory(&pem.Block{Type: block.Type, Bytes: der}), nil
	}
}
