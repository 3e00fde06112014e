package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// canonical form, the key net/http stores it under
	traceIDHeader = "X-Trace-Id"

	// maxTraceIDLength bounds a client-supplied trace id; longer or
	// non-printable ids are replaced by a generated one.
	maxTraceIDLength = 128
)

type traceIDCtxKey struct{}

// withTraceID reuses the caller's X-Trace-ID or generates a UUID, stores it
// in the context together with a child logger carrying it, and echoes it in
// the response headers.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID(traceID) {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := context.WithValue(r.Context(), traceIDCtxKey{}, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

// traceIDFromContext returns the id stored by withTraceID, or "".
func traceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDCtxKey{}).(string)
	return traceID
}

func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
