// Package pg bootstraps the PostgreSQL layer: a pgx/v5 connection pool with
// startup retries, goose schema migrations routed through the application
// logger, a health check closure, and error helpers (not-found, duplicate
// key) used by repositories.
//
// Configuration comes from environment variables via the Config struct;
// DATABASE_URL is required and its absence is a startup failure.
package pg
