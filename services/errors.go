package services

import "errors"

// Sentinel errors the controllers map onto HTTP statuses.
var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrCartEmpty              = errors.New("cart is empty")
	ErrAddressIncomplete      = errors.New("delivery address is incomplete")
	ErrInvalidTransition      = errors.New("invalid status transition")
)
