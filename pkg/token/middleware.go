package token

import (
	"net/http"
	"strings"
)

// unauthorizedBody is the one response every rejected request receives. The
// caller must not be able to tell a missing header from a bad signature or an
// expired token.
const unauthorizedBody = `{"error":"unauthorized"}`

// Verifier validates a bearer token and returns the identity it carries.
// *Service satisfies it.
type Verifier interface {
	Verify(tokenString string) (Identity, error)
}

// Middleware gates protected routes on a valid bearer token. A request with
// no usable Authorization header is rejected without touching the verifier;
// otherwise the token is verified exactly once and the embedded identity is
// attached to the request context for downstream handlers.
func Middleware(svc Verifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := bearerToken(r)
			if err != nil {
				unauthorized(w)
				return
			}

			identity, err := svc.Verify(raw)
			if err != nil {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header per RFC 6750.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrUnauthorized
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrUnauthorized
	}

	return parts[1], nil
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(unauthorizedBody))
}
