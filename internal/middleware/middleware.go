// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request ids, request logging, CORS, tracing, metrics and panic
// recovery, and hold the global error handler.
package middleware
