package auth

import "errors"

var (
	ErrUserNotFound       = errors.New("user does not exist")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid refresh token")
	ErrMissingEmail       = errors.New("email is required")
)
