package auth

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a failed login never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingFields is the service-side backstop behind form binding.
	ErrMissingFields = errors.New("all fields are required")
)
