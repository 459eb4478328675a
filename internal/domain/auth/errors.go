package auth

import (
	"errors"

	"ems/internal/apperror"
)

var (
	// ErrInvalidCredentials covers unknown email, inactive user and wrong password alike.
	ErrInvalidCredentials = apperror.Auth("invalid credentials")
	ErrInvalidToken       = apperror.Auth("invalid or expired token")
	ErrEmailTaken         = apperror.Conflict("User already exists.")

	ErrUserNotFound = errors.New("user not found")
)
