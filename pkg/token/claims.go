package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the exposable subset of a user record that gets embedded in
// every issued token. It must never carry secret material: anything
// recoverable from a valid token is safe to show to its bearer.
type Identity struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Claims couples an Identity with the registered timing claims. The identity
// fields are flattened into the JWT payload alongside iat/exp.
type Claims struct {
	Identity
	jwt.RegisteredClaims
}

// NewClaims wraps identity with an issued-at of now and an absolute expiry of
// now+ttl. The embedded Identity round-trips unchanged: for any identity i,
// NewClaims(i, ttl).Identity == i.
func NewClaims(identity Identity, ttl time.Duration) Claims {
	now := time.Now()
	return Claims{
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}
