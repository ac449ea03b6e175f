package user

import "errors"

// Error strings are part of the API contract: clients match on them verbatim.
var (
	ErrUserExists      = errors.New("User already exists")
	ErrUserNotFound    = errors.New("User not found")
	ErrInvalidPassword = errors.New("Invalid password")
)
