// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-dispatch/models"
)

// HandlerFunc processes an in-flight message. It returns either an in-flight
// message, which is handed to the next handler of the chain, or a terminal
// one, which ends the chain and becomes the response.
type HandlerFunc func(req models.Message) models.Message

// routableMethods is the number of methods that own a dedicated chain
// (HEAD, GET, POST, PUT, DELETE). OPTIONS is answered synthetically.
const routableMethods = int(models.MethodOptions)

// allowOrder is the fixed order in which methods are listed in Allow.
var allowOrder = [...]models.Method{
	models.MethodGet,
	models.MethodPut,
	models.MethodPost,
	models.MethodDelete,
	models.MethodHead,
}

// Pipeline holds the handler chains bound to one path.
//
// Handlers are append-only. A Pipeline is safe for concurrent use: dispatch
// works on a snapshot of the chains, so handlers may still be appended while
// requests are in flight.
type Pipeline struct {
	mu     sync.RWMutex
	path   string
	chains [routableMethods][]HandlerFunc
	common []HandlerFunc
}

// NewPipeline returns an empty pipeline with no path bound.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Route returns a new pipeline bound to path.
func Route(path string) *Pipeline {
	return NewPipeline().Bind(path)
}

// Bind sets the path label of p and returns p.
func (p *Pipeline) Bind(path string) *Pipeline {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.path = path
	return p
}

// Path returns the path label p is registered under.
func (p *Pipeline) Path() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.path
}

// Handle appends h to the chain of method and returns p.
//
// It panics if h is nil or if method has no chain of its own (OPTIONS is
// synthesized from the other chains, unsupported methods are never routed).
func (p *Pipeline) Handle(method models.Method, h HandlerFunc) *Pipeline {
	if h == nil {
		panic("router: nil handler passed to Handle")
	}
	if int(method) >= routableMethods {
		panic("router: cannot bind a handler to " + method.String())
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.chains[method] = append(p.chains[method], h)
	return p
}

// Get appends h to the GET chain.
func (p *Pipeline) Get(h HandlerFunc) *Pipeline { return p.Handle(models.MethodGet, h) }

// Put appends h to the PUT chain.
func (p *Pipeline) Put(h HandlerFunc) *Pipeline { return p.Handle(models.MethodPut, h) }

// Post appends h to the POST chain.
func (p *Pipeline) Post(h HandlerFunc) *Pipeline { return p.Handle(models.MethodPost, h) }

// Delete appends h to the DELETE chain.
func (p *Pipeline) Delete(h HandlerFunc) *Pipeline { return p.Handle(models.MethodDelete, h) }

// Head appends h to the HEAD chain.
func (p *Pipeline) Head(h HandlerFunc) *Pipeline { return p.Handle(models.MethodHead, h) }

// All appends h to the common chain, which runs for a routable method only
// when that method has no chain of its own.
func (p *Pipeline) All(h HandlerFunc) *Pipeline {
	if h == nil {
		panic("router: nil handler passed to All")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.common = append(p.common, h)
	return p
}

// Dispatch runs req through the chain matching its method.
//
//   - OPTIONS never runs a chain; the response lists the allowed methods.
//   - Unsupported methods get 501 Not Implemented.
//   - A method without a chain of its own falls through to the common chain.
//   - If no handler produced a terminal value the response is 404 Not Found.
//
// req is cloned first, so handlers never change the caller's maps.
func (p *Pipeline) Dispatch(req models.Message) models.Message {
	switch {
	case req.Method == models.MethodOptions:
		return p.options()
	case !req.Method.IsSupported():
		return models.NewResponse(http.StatusNotImplemented)
	}

	chain := p.chainFor(req.Method)
	if resp, ok := runChain(chain, req.Clone()); ok {
		return resp
	}

	return models.NewResponse(http.StatusNotFound)
}

// AllowedMethods returns the value of the Allow header produced for OPTIONS:
// "OPTIONS" followed by every method with a non-empty chain in the order
// GET, PUT, POST, DELETE, HEAD.
func (p *Pipeline) AllowedMethods() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	allowed := []string{http.MethodOptions}
	for _, m := range allowOrder {
		if len(p.chains[m]) > 0 {
			allowed = append(allowed, m.String())
		}
	}

	return strings.Join(allowed, ", ")
}

func (p *Pipeline) options() models.Message {
	allowed := p.AllowedMethods()

	resp := models.NewResponse(http.StatusOK)
	resp.Header["Allow"] = allowed
	resp.Header["Access-Control-Allow-Methods"] = allowed
	return resp
}

// chainFor returns a snapshot of the chain to run for method: its own chain
// if it has one, the common chain otherwise.
func (p *Pipeline) chainFor(method models.Method) []HandlerFunc {
	p.mu.RLock()
	defer p.mu.RUnlock()

	chain := p.chains[method]
	if len(chain) == 0 {
		chain = p.common
	}

	return chain[:len(chain):len(chain)]
}

// runChain threads current through chain and reports whether a handler
// returned a terminal value. When it did not, the last in-flight value is
// returned.
func runChain(chain []HandlerFunc, current models.Message) (models.Message, bool) {
	for _, handler := range chain {
		current = handler(current)
		if current.Terminal() {
			return current, true
		}
	}

	return current, false
}
