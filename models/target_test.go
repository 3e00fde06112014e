// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantPath  string
		wantQuery map[string]string
	}{
		{
			name:      "path only",
			target:    "/hello",
			wantPath:  "/hello",
			wantQuery: map[string]string{},
		},
		{
			name:      "single pair",
			target:    "/hello?name=go",
			wantPath:  "/hello",
			wantQuery: map[string]string{"name": "go"},
		},
		{
			name:      "several pairs",
			target:    "/a?x=1&y=2",
			wantPath:  "/a",
			wantQuery: map[string]string{"x": "1", "y": "2"},
		},
		{
			name:      "duplicate key last wins",
			target:    "/a?x=1&x=2",
			wantPath:  "/a",
			wantQuery: map[string]string{"x": "2"},
		},
		{
			name:      "split on first question mark only",
			target:    "/a?x=what?&y=1",
			wantPath:  "/a",
			wantQuery: map[string]string{"x": "what?", "y": "1"},
		},
		{
			name:      "split on first equals only",
			target:    "/a?expr=a=b",
			wantPath:  "/a",
			wantQuery: map[string]string{"expr": "a=b"},
		},
		{
			name:      "key without value",
			target:    "/a?flag",
			wantPath:  "/a",
			wantQuery: map[string]string{"flag": ""},
		},
		{
			name:      "empty pairs skipped",
			target:    "/a?&x=1&&",
			wantPath:  "/a",
			wantQuery: map[string]string{"x": "1"},
		},
		{
			name:      "empty query",
			target:    "/a?",
			wantPath:  "/a",
			wantQuery: map[string]string{},
		},
		{
			name:      "values are not unescaped",
			target:    "/a?q=a%20b",
			wantPath:  "/a",
			wantQuery: map[string]string{"q": "a%20b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, query := ParseTarget(tt.target)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantQuery, query)
		})
	}
}
