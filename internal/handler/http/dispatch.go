// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-dispatch/internal/logger"
	"github.com/MKhiriev/go-dispatch/models"
)

// dispatch is the single net/http entry point of the route table.
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	path, req, err := h.decodeRequest(w, r)
	if err != nil {
		switch {
		case errors.Is(err, ErrRequestBodyTooLarge):
			log.Warn().Err(err).Int64("limit", h.maxBodyBytes).Msg("request rejected")
			http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
		default:
			log.Err(err).Msg("error decoding request")
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		}
		return
	}

	resp := h.router.Run(path, req)

	log.Debug().
		Str("path", path).
		Str("method", req.Method.String()).
		Int("status", resp.Status).
		Msg("request dispatched")

	if err := encodeResponse(w, resp); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

// decodeRequest converts r into the path and request message handed to the
// route table. The path and query are split from the escaped request target
// without unescaping. Multi-valued headers keep their last value; the Host
// header is restored from r.Host.
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) (string, models.Message, error) {
	target := r.URL.EscapedPath()
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	path, query := models.ParseTarget(target)

	req := models.NewRequest(models.ParseMethod(r.Method))
	req.Query = query

	for name, values := range r.Header {
		if len(values) > 0 {
			req.Header[name] = values[len(values)-1]
		}
	}
	if r.Host != "" {
		req.Header["Host"] = r.Host
	}
	if traceID := traceIDFromContext(r.Context()); traceID != "" {
		req.Header[traceIDHeader] = traceID
	}

	if r.Body != nil {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				return "", models.Message{}, fmt.Errorf("%w: limit is %d bytes", ErrRequestBodyTooLarge, maxBytesErr.Limit)
			}
			return "", models.Message{}, fmt.Errorf("%w: %w", ErrReadingRequestBody, err)
		}
		req.Body = body
	}

	return path, req, nil
}

// encodeResponse writes msg to w. A zero status is sent as 200 OK. Statuses
// that forbid a body (1xx, 204, 304) are sent without one. An in-flight
// message never reaches here: the route table always answers with a
// terminal one.
func encodeResponse(w http.ResponseWriter, msg models.Message) error {
	status := msg.Status
	if status == 0 {
		status = http.StatusOK
	}

	header := w.Header()
	for name, value := range msg.Header {
		header.Set(name, value)
	}

	if !bodyAllowedForStatus(status) {
		header.Del("Content-Length")
		w.WriteHeader(status)
		return nil
	}

	header.Set("Content-Length", strconv.Itoa(len(msg.Body)))
	w.WriteHeader(status)

	if len(msg.Body) == 0 {
		return nil
	}

	if _, err := w.Write(msg.Body); err != nil {
		return fmt.Errorf("error writing response body: %w", err)
	}
	return nil
}

func bodyAllowedForStatus(status int) bool {
	switch {
	case status >= 100 && status <= 199:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}
	return true
}
