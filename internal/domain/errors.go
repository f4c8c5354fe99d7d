package domain

import "errors"

// Shared by several modules; each module re-exports the ones it returns.
var (
	ErrNoSession    = errors.New("no active session")
	ErrRoomNotFound = errors.New("room not found")
)
