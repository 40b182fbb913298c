// Package logger builds configured log/slog loggers with JSON or text output
// and optional context attribute extraction (e.g. request IDs injected into
// every record emitted during a request).
package logger
