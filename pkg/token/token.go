package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the validity window applied to issued tokens unless
// overridden with WithTTL.
const DefaultTTL = 2 * time.Hour

// Config holds token service settings loaded from the environment. The
// signing secret is required: the process must not start without it.
type Config struct {
	Secret string        `env:"JWT_SECRET,required"` // Secret is the symmetric HS256 signing key.
	TTL    time.Duration `env:"JWT_TTL" envDefault:"2h"`
}

// Service issues and verifies HS256-signed bearer tokens. The signing secret
// is immutable after construction, so a single Service is safe for concurrent
// use by every request handler.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithTTL overrides the validity window for issued tokens.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// New creates a token service with the given signing secret.
func New(secret []byte, opts ...Option) (*Service, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	s := &Service{secret: secret, ttl: DefaultTTL}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewFromConfig creates a token service from environment configuration.
func NewFromConfig(cfg Config) (*Service, error) {
	opts := make([]Option, 0, 1)
	if cfg.TTL > 0 {
		opts = append(opts, WithTTL(cfg.TTL))
	}
	return New([]byte(cfg.Secret), opts...)
}

// Issue embeds identity into a signed token valid for the service TTL and
// returns the opaque token string. A signing failure is a server fault, never
// a credential problem.
func (s *Service) Issue(identity Identity) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, NewClaims(identity, s.ttl))
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and returns the embedded
// identity. Every failure mode (malformed string, wrong algorithm, bad
// signature, elapsed expiry, unexpected claim shape) collapses into
// ErrUnauthorized so the verification boundary never leaks why a token was
// rejected.
func (s *Service) Verify(tokenString string) (Identity, error) {
	var claims Claims
	t, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !t.Valid {
		return Identity{}, ErrUnauthorized
	}
	return claims.Identity, nil
}
