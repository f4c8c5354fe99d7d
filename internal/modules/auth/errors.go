package auth

import (
	"errors"

	"oceanbreeze/internal/domain"
)

var (
	ErrNoSession          = domain.ErrNoSession
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
)
