package repository

import "errors"

// ErrDuplicateEmail is returned by AccountRepository.Create when the email
// collides with an existing account, active or not.
var ErrDuplicateEmail = errors.New("email already registered")
