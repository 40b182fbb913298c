package auth

import "errors"

// ErrInvalidCredentials is the single rejection for a failed login, identical
// whether the email was unknown or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")
