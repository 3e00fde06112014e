package hooks

import (
	"github.com/MKhiriev/go-dispatch/internal/router"
	"github.com/MKhiriev/go-dispatch/models"
)

// Chain runs hooks in order and stops at the first one returning false.
// Nil entries are skipped; an empty chain lets everything through.
func Chain(hooks ...router.Hook) router.Hook {
	chain := make([]router.Hook, 0, len(hooks))
	for _, h := range hooks {
		if h != nil {
			chain = append(chain, h)
		}
	}

	return func(path string, msg *models.Message) bool {
		for _, h := range chain {
			if !h(path, msg) {
				return false
			}
		}
		return true
	}
}
