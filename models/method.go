// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/http"

// Method identifies the HTTP verb of a [Message].
//
// Only the verbs the dispatcher knows how to route are enumerated. Every other
// wire verb is mapped to [MethodUnsupported], which pipelines answer with
// 501 Not Implemented.
type Method uint8

const (
	MethodHead Method = iota
	MethodGet
	MethodPost
	MethodPut
	MethodDelete
	MethodOptions

	// MethodUnsupported stands for any verb outside the enumeration above
	// (TRACE, PATCH, CONNECT, extension methods).
	MethodUnsupported
)

var methodNames = [...]string{
	MethodHead:        http.MethodHead,
	MethodGet:         http.MethodGet,
	MethodPost:        http.MethodPost,
	MethodPut:         http.MethodPut,
	MethodDelete:      http.MethodDelete,
	MethodOptions:     http.MethodOptions,
	MethodUnsupported: "UNSUPPORTED",
}

// ParseMethod maps a wire verb to a [Method]. The comparison is exact, as
// HTTP method names are case-sensitive.
func ParseMethod(verb string) Method {
	switch verb {
	case http.MethodHead:
		return MethodHead
	case http.MethodGet:
		return MethodGet
	case http.MethodPost:
		return MethodPost
	case http.MethodPut:
		return MethodPut
	case http.MethodDelete:
		return MethodDelete
	case http.MethodOptions:
		return MethodOptions
	default:
		return MethodUnsupported
	}
}

// String returns the canonical verb, or "UNSUPPORTED".
func (m Method) String() string {
	if m > MethodUnsupported {
		return methodNames[MethodUnsupported]
	}
	return methodNames[m]
}

// IsSupported reports whether m is one of the routable verbs.
func (m Method) IsSupported() bool {
	return m < MethodUnsupported
}
