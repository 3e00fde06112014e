// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"net/http"
	"slices"
	"sync"

	"github.com/MKhiriev/go-dispatch/internal/logger"
	"github.com/MKhiriev/go-dispatch/models"
)

// DefaultHandlerFunc answers requests for paths nothing was registered for.
type DefaultHandlerFunc func(path string, req models.Message) models.Message

// Hook is invoked around every dispatch with the request path and a pointer
// to the message, which it may annotate.
//
// The pre-hook receives the request; returning false vetoes the dispatch
// with 401 Unauthorized. The post-hook receives the response; its result is
// ignored.
type Hook func(path string, msg *models.Message) bool

// AllowAll is a [Hook] that lets everything through. It is the default
// pre-hook and post-hook.
func AllowAll(string, *models.Message) bool {
	return true
}

// Router is the route table: it maps paths to pipelines and wraps every
// dispatch with the pre- and post-hooks.
//
// Router is safe for concurrent use. Lookups of unknown paths create and
// store a fallback pipeline under a write lock, so concurrent first lookups
// of the same path observe a single pipeline.
type Router struct {
	mu     sync.RWMutex
	routes map[string]*Pipeline

	defaultHandler DefaultHandlerFunc
	preHook        Hook
	postHook       Hook

	logger *logger.Logger
}

// Option customises a [Router] at construction.
type Option func(*Router)

// WithDefaultHandler replaces [DefaultHandler] as the answer for unknown paths.
func WithDefaultHandler(h DefaultHandlerFunc) Option {
	return func(r *Router) {
		if h != nil {
			r.defaultHandler = h
		}
	}
}

// WithPreHook installs the gate run before every dispatch.
func WithPreHook(h Hook) Option {
	return func(r *Router) {
		if h != nil {
			r.preHook = h
		}
	}
}

// WithPostHook installs the observer run after every dispatch.
func WithPostHook(h Hook) Option {
	return func(r *Router) {
		if h != nil {
			r.postHook = h
		}
	}
}

// WithLogger sets the logger used for registration events.
func WithLogger(l *logger.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.logger = l
		}
	}
}

// New returns an empty Router. Without options it uses [DefaultHandler] and
// [AllowAll] for both hooks.
func New(opts ...Option) *Router {
	r := &Router{
		routes:         make(map[string]*Pipeline),
		defaultHandler: DefaultHandler,
		preHook:        AllowAll,
		postHook:       AllowAll,
		logger:         logger.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Use registers pipelines under their own paths, in order. A pipeline
// replaces whatever was registered under the same path before, including
// an earlier entry of the same call.
func (r *Router) Use(pipelines ...*Pipeline) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range pipelines {
		if p == nil {
			panic("router: nil pipeline passed to Use")
		}

		path := p.Path()
		if _, replaced := r.routes[path]; replaced {
			r.logger.Warn().Str("path", path).Msg("route replaced")
		}
		r.routes[path] = p
		r.logger.Debug().Str("path", path).Str("allow", p.AllowedMethods()).Msg("route registered")
	}

	return r
}

// Lookup returns the pipeline registered for path. If there is none, it
// creates one whose common chain delegates to the default handler, stores
// it and returns it, so every path maps to one stable pipeline for the life
// of the Router.
//
// The returned pipeline can be extended in place:
//
//	r.Lookup("/hello").Get(hello)
func (r *Router) Lookup(path string) *Pipeline {
	r.mu.RLock()
	p, ok := r.routes[path]
	r.mu.RUnlock()
	if ok {
		return p
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok = r.routes[path]; ok {
		return p
	}

	defaultHandler := r.defaultHandler
	p = Route(path).All(func(req models.Message) models.Message {
		return defaultHandler(path, req)
	})
	r.routes[path] = p

	r.logger.Debug().Str("path", path).Msg("fallback route created")

	return p
}

// Run dispatches req for path: pre-hook, pipeline, post-hook. A vetoing
// pre-hook yields 401 Unauthorized and no handler runs.
func (r *Router) Run(path string, req models.Message) models.Message {
	if !r.preHook(path, &req) {
		return models.NewResponse(http.StatusUnauthorized)
	}

	resp := r.Lookup(path).Dispatch(req)

	// the hook gets a copy; its changes never reach the caller
	observed := resp.Clone()
	r.postHook(path, &observed)

	return resp
}

// Paths returns every path with a pipeline, sorted.
func (r *Router) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paths := make([]string, 0, len(r.routes))
	for path := range r.routes {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	return paths
}
