// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Each package that needs configuration declares its own Config struct with
// `env` tags and main loads it at startup. Required variables use the
// `,required` tag option, which turns their absence into a startup failure
// rather than a runtime surprise.
package config
