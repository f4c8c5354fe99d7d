package booking

import (
	"errors"

	"oceanbreeze/internal/domain"
)

var (
	ErrNoSession        = domain.ErrNoSession
	ErrRoomNotFound     = domain.ErrRoomNotFound
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrNotAvailable     = errors.New("room not available for the selected dates")
)
