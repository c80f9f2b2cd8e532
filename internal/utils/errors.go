package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrPasswordRequired   = errors.New("PASSWORD_REQUIRED")
	ErrPasswordTooShort   = errors.New("PASSWORD_TOO_SHORT")
)
