// Package password provides one-way salted password hashing and constant-time
// verification built on bcrypt.
//
// Hash produces a self-describing string (salt and cost embedded) suitable for
// persistence. Verify distinguishes a legitimate mismatch (false, nil) from a
// stored hash bcrypt cannot parse (false, ErrInvalidHash), so data corruption
// is never silently reported as a wrong password.
//
// # Usage
//
//	hash, err := password.Hash("s3cret")
//	if err != nil {
//	    // server fault, not a validation problem
//	}
//
//	ok, err := password.Verify("s3cret", hash)
//	switch {
//	case err != nil:
//	    // stored hash is corrupt
//	case !ok:
//	    // wrong password
//	}
//
// Hashing is CPU-bound; plaintext is never logged or retained.
package password
