package token

import "errors"

var (
	// ErrMissingSecret is returned when a Service is constructed without a
	// signing secret.
	ErrMissingSecret = errors.New("token: missing signing secret")

	// ErrUnauthorized is the single outcome for every verification failure:
	// missing, malformed, mis-signed, and expired tokens are indistinguishable
	// to callers.
	ErrUnauthorized = errors.New("token: unauthorized")
)
