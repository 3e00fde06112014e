// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrTLSFileNotFound is returned when a configured certificate or key
	// file does not exist.
	ErrTLSFileNotFound = errors.New("tls file does not exist")
	// ErrTLSFileNotRegular is returned when a configured path is a directory
	// or another non-regular file.
	ErrTLSFileNotRegular = errors.New("tls file is not a regular file")
	// ErrTLSFileEmpty is returned when a configured file has no content.
	ErrTLSFileEmpty = errors.New("tls file is empty")
	// ErrTLSKeyPasswordRequired is returned for an encrypted private key
	// without a configured password.
	ErrTLSKeyPasswordRequired = errors.New("tls private key is encrypted but no password is configured")
	// ErrTLSKeyDecryption is returned when the password does not decrypt the
	// private key.
	ErrTLSKeyDecryption = errors.New("tls private key cannot be decrypted")
	// ErrTLSInvalidPEM is returned when a file holds no PEM block.
	ErrTLSInvalidPEM = errors.New("tls file holds no PEM data")
)
