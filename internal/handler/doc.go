// Package handler wires the HTTP surface: JSON request decoding, route
// assembly, and the mapping from service errors to fixed, minimal response
// bodies. Protected routes sit behind the bearer-token middleware and read
// the caller's identity from the request context.
package handler
