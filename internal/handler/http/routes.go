package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the outer mux. Every path and every method, including verbs
// chi does not know, reaches dispatch, so method handling stays with the
// route table. Recoverer sits inside the access log so a handler panic is
// logged as the 500 it becomes.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.Recoverer)

	router.HandleFunc("/*", h.dispatch)
	router.NotFound(h.dispatch)
	router.MethodNotAllowed(h.dispatch)

	return router
}
