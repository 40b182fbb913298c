package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost balances hashing latency against brute-force resistance.
// bcrypt embeds the cost in the output, so raising it later only affects
// newly created hashes.
const DefaultCost = bcrypt.DefaultCost

// Hash derives a salted bcrypt hash from the plaintext password. The output
// is self-describing (algorithm, cost, and salt are embedded) and safe to
// persist as an opaque string.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}
	return string(hash), nil
}

// Verify recomputes the bcrypt transform over plaintext using the parameters
// embedded in hashed and compares the digests in constant time.
//
// A plain mismatch returns (false, nil). A stored hash that bcrypt cannot
// parse returns (false, ErrInvalidHash) so callers can treat it as a data
// integrity problem rather than a wrong password.
func Verify(plaintext, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
}
