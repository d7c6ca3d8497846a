package game

import "errors"

var (
	ErrAuthenticationRequired = errors.New("authentication_required")
	ErrInvalidAmount          = errors.New("invalid_amount")
	ErrUserNotFound           = errors.New("user_not_found")
	ErrInsufficientFunds      = errors.New("insufficient_funds")
	ErrStoreUnavailable       = errors.New("store_unavailable")
)
