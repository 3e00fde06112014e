package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-dispatch/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request using the logger that
// withTraceID put into the context. Server errors are logged at error level.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.statusCode()

		var event *zerolog.Event
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else {
			event = log.Info()
		}

		event.
			Str("uri", uri).
			Str("method", method).
			Str("proto", r.Proto).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
