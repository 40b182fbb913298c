// Package httpserver wraps the standard library http.Server with functional
// options, environment configuration, and graceful shutdown on context
// cancellation or SIGINT/SIGTERM.
package httpserver
