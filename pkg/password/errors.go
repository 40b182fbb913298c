package password

import "errors"

var (
	// ErrHashingFailed indicates the hashing primitive itself failed. This is
	// a server fault unrelated to the supplied password.
	ErrHashingFailed = errors.New("password: hashing failed")

	// ErrInvalidHash indicates the stored hash is not a parseable bcrypt
	// string. Distinct from a mismatch: the stored data is corrupt.
	ErrInvalidHash = errors.New("password: malformed stored hash")
)
