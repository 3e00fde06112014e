// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// ParseTarget splits a request target into its path and query parameters.
//
// The target is split on the first '?'. The query string is split on '&'
// and every pair on its first '='. A pair without '=' yields a key with an
// empty value, empty pairs are skipped, and for duplicate keys the last
// value wins. Keys and values are kept as received, without unescaping.
func ParseTarget(target string) (string, map[string]string) {
	query := make(map[string]string)

	path, rawQuery, found := strings.Cut(target, "?")
	if !found {
		return path, query
	}

	for pair := range strings.SplitSeq(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		query[key] = value
	}

	return path, query
}
