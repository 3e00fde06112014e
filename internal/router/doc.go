// Package router is the routing and dispatch engine.
//
// A [Pipeline] binds one path to ordered, per-method handler chains and runs
// them with short-circuit semantics: the first handler that returns a
// terminal [models.Message] ends the chain. A [Router] maps paths to
// pipelines, wraps every dispatch with a pre-hook (an authorization gate that
// can veto with 401) and a post-hook (an observation point), and answers
// unknown paths with a self-describing 404.
//
// Registration uses a builder that mutates the pipeline it returns:
//
//	r := router.New(router.WithPreHook(auth))
//	r.Use(router.Route("/hello").Get(hello).Head(hello))
//	r.Lookup("/echo").Post(validate).Post(echo)
//
// Dispatch is synchronous. Handler panics are not recovered here; the
// transport layer owns that boundary.
package router
