// Package http adapts the route table to net/http.
//
// The outer chi mux recovers handler panics as 500 responses, tags every
// request with a trace id and writes one access log line per request. All
// paths and methods are then handed to a single dispatch handler, which
// converts the request into a [models.Message], runs it through
// [router.Router.Run] and writes the resulting message back.
package http
