// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned by decodeRequest. Callers can match against them
// with [errors.Is].
var (
	// ErrRequestBodyTooLarge is returned when the request body exceeds the
	// configured limit.
	ErrRequestBodyTooLarge = errors.New("request body too large")

	// ErrReadingRequestBody is returned when the body cannot be read for any
	// other reason, e.g. the client disconnected mid-upload.
	ErrReadingRequestBody = errors.New("error reading request body")
)
