package account

import "errors"

var (
	ErrMissingFields          = errors.New("missing_fields")
	ErrEmailTaken             = errors.New("email_taken")
	ErrUsernameTaken          = errors.New("username_taken")
	ErrInvalidCredentials     = errors.New("invalid_credentials")
	ErrUserNotFound           = errors.New("user_not_found")
	ErrAuthenticationRequired = errors.New("authentication_required")
)
