// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-dispatch/models"
)

// DefaultHandler answers an unknown path with 404 Not Found and a plain-text
// body listing the request's query parameters and headers, in key order:
//
//	Requested destination [/missing] does not exist.
//
//	Query parameters:
//	q : 1
//
//	Headers:
//	Accept : */*
func DefaultHandler(path string, req models.Message) models.Message {
	var sb strings.Builder

	sb.WriteString("Requested destination [" + path + "] does not exist.\n\nQuery parameters:\n")
	writePairs(&sb, req.Query)

	sb.WriteString("\nHeaders:\n")
	writePairs(&sb, req.Header)

	return models.NewTextResponse(http.StatusNotFound, sb.String())
}

func writePairs(sb *strings.Builder, pairs map[string]string) {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		sb.WriteString(k + " : " + pairs[k] + "\n")
	}
}
