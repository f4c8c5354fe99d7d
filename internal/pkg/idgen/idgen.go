package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

type Generator interface {
	NewID() string
}

// UUIDv7 produces time-ordered ids, so sorting by id roughly follows creation order.
type UUIDv7 struct{}

func (UUIDv7) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Sequence yields prefix-1, prefix-2, ... and is safe for concurrent use.
type Sequence struct {
	Prefix string
	n      atomic.Int64
}

func (s *Sequence) NewID() string {
	return fmt.Sprintf("%s-%d", s.Prefix, s.n.Add(1))
}
