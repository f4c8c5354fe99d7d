package catalog

import (
	"errors"

	"oceanbreeze/internal/domain"
)

var (
	ErrRoomNotFound = domain.ErrRoomNotFound
	ErrNameRequired = errors.New("room name is required")
	ErrInvalidPrice = errors.New("room price must not be negative")
)
