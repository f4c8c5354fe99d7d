package review

import (
	"errors"

	"oceanbreeze/internal/domain"
)

var (
	ErrNoSession      = domain.ErrNoSession
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong = errors.New("comment must be at most 280 characters")
)
