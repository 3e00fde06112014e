package hooks

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-dispatch/internal/logger"
	"github.com/MKhiriev/go-dispatch/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudit_LogsResponse(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success", http.StatusOK, "info"},
		{"not found", http.StatusNotFound, "info"},
		{"server error", http.StatusNotImplemented, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			hook := Audit(&logger.Logger{Logger: zerolog.New(&buf)})

			resp := models.NewTextResponse(tt.status, "hello")
			before := resp.Clone()

			assert.True(t, hook("/hello", &resp))
			assert.Equal(t, before, resp, "audit must not alter the response")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "/hello", entry["path"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.EqualValues(t, 5, entry["size"])
			assert.Equal(t, "dispatched", entry["message"])
		})
	}
}

func TestAudit_NilLogger(t *testing.T) {
	resp := models.NewResponse(http.StatusOK)
	assert.True(t, Audit(nil)("/x", &resp))
}
