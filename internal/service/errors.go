package service

import "errors"

// Expected failures callers are meant to branch on. Anything else coming
// out of a service is an underlying storage or database fault, wrapped with
// context so the caller can tell "your input was wrong" from "the system is
// broken".
var (
	ErrIDRequired     = errors.New("id is required")
	ErrTitleRequired  = errors.New("title is required")
	ErrFileRequired   = errors.New("file content is required")
	ErrYearOutOfRange = errors.New("year out of range")
	ErrNameRequired   = errors.New("name is required")

	ErrNotFound  = errors.New("document not found")
	ErrForbidden = errors.New("operation not permitted")

	ErrInvalidRole     = errors.New("unknown role")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrAccountNotFound = errors.New("account not found or inactive")
	ErrBadCredential   = errors.New("invalid email or password")
)
