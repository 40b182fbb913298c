// Package auth implements signup and login on top of the credential store:
// bcrypt password hashing and verification, enumeration-hardened failure
// reporting, and bearer token issuance for verified identities.
package auth
