package service

import "errors"

var (
	// ErrMissingCredentials is returned when the identifier or the secret is
	// empty. No lookup is performed.
	ErrMissingCredentials = errors.New("identifier and secret are required")

	// ErrInvalidCredentials covers both an unknown or inactive identifier
	// and a wrong secret.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStorageUnavailable is returned when credentials could not be read.
	ErrStorageUnavailable = errors.New("credential storage unavailable")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
