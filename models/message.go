// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"maps"
	"net/http"
	"slices"
)

// Message is the single value type that travels through a dispatch.
//
// It is a tagged union distinguished by IsRequest:
//   - in-flight (IsRequest == true): a request still being processed. A
//     handler that returns an in-flight value hands it to the next handler
//     of the chain.
//   - terminal (IsRequest == false): a finished response. The chain stops at
//     the first terminal value and nothing downstream mutates it any more.
//
// Header and Query are flat maps; when the same key is received twice the
// last value wins.
type Message struct {
	// IsRequest is the phase marker described above.
	IsRequest bool

	// Method is set once by the transport adapter from the wire verb.
	Method Method

	// Status is the HTTP status code. Meaningful only on terminal values.
	Status int

	// Header holds request headers on in-flight values and response headers
	// on terminal values.
	Header map[string]string

	// Query holds the parsed query component of the request target.
	Query map[string]string

	// Body is the fully buffered payload.
	Body []byte
}

// NewRequest returns an empty in-flight message for method.
func NewRequest(method Method) Message {
	return Message{
		IsRequest: true,
		Method:    method,
		Header:    make(map[string]string),
		Query:     make(map[string]string),
	}
}

// NewResponse returns an empty terminal message carrying status.
func NewResponse(status int) Message {
	return Message{
		IsRequest: false,
		Status:    status,
		Header:    make(map[string]string),
		Query:     make(map[string]string),
	}
}

// NewTextResponse returns a terminal plain-text message.
func NewTextResponse(status int, body string) Message {
	resp := NewResponse(status)
	resp.Header["Content-Type"] = "text/plain"
	resp.Body = []byte(body)
	return resp
}

// Clone returns a deep copy of m. Maps and body are copied so that the copy
// can be changed without affecting the original.
func (m Message) Clone() Message {
	clone := m
	clone.Header = cloneMap(m.Header)
	clone.Query = cloneMap(m.Query)
	clone.Body = slices.Clone(m.Body)
	return clone
}

// Terminal reports whether m is a finished response.
func (m Message) Terminal() bool {
	return !m.IsRequest
}

// StatusText returns the reason phrase for m.Status.
func (m Message) StatusText() string {
	return http.StatusText(m.Status)
}

func cloneMap(src map[string]string) map[string]string {
	if src == nil {
		return make(map[string]string)
	}
	return maps.Clone(src)
}
