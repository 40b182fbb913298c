// Package token issues and verifies signed bearer tokens carrying user
// identity claims, and provides the HTTP middleware and context helpers that
// gate protected routes on them.
//
// Tokens are HS256 JWTs (github.com/golang-jwt/jwt/v5) signed with a single
// symmetric process-wide secret. Claims are the Identity fields flattened
// alongside the registered iat/exp claims; the default validity window is two
// hours. Validity is entirely self-contained: there is no server-side token
// state, and verification is a pure function of (token, secret, current time).
//
// # Usage
//
//	svc, err := token.New([]byte(secret))
//	if err != nil {
//	    // fatal: the process must not start without a secret
//	}
//
//	tok, err := svc.Issue(token.Identity{ID: 1, Email: "a@example.com"})
//
//	identity, err := svc.Verify(tok)
//	if err != nil {
//	    // token.ErrUnauthorized, regardless of cause
//	}
//
//	r.Group(func(r chi.Router) {
//	    r.Use(token.Middleware(svc))
//	    // handlers read token.IdentityFromContext(r.Context())
//	})
//
// Verification failures deliberately collapse into the single
// ErrUnauthorized sentinel so callers cannot probe why a token was rejected.
package token
