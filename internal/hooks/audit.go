package hooks

import (
	"github.com/MKhiriev/go-dispatch/internal/logger"
	"github.com/MKhiriev/go-dispatch/internal/router"
	"github.com/MKhiriev/go-dispatch/models"
)

// Audit returns a post-hook that logs one entry per dispatched response.
// It never alters the response.
func Audit(log *logger.Logger) router.Hook {
	if log == nil {
		log = logger.Nop()
	}

	return func(path string, msg *models.Message) bool {
		event := log.Info()
		if msg.Status >= 500 {
			event = log.Error()
		}

		event.
			Str("path", path).
			Int("status", msg.Status).
			Int("size", len(msg.Body)).
			Msg("dispatched")

		return true
	}
}
