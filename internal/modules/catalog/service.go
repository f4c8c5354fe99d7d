package catalog

import (
	"context"
	"slices"
	"strings"

	"oceanbreeze/internal/domain"
	"oceanbreeze/internal/pkg/clock"
	"oceanbreeze/internal/pkg/idgen"
	"oceanbreeze/internal/state"

	"github.com/rs/zerolog/log"
)

type Service struct {
	state *state.State
	clock clock.Clock
	ids   idgen.Generator
}

func NewService(st *state.State, clk clock.Clock, ids idgen.Generator) *Service {
	return &Service{state: st, clock: clk, ids: ids}
}

/* ---------- READ ---------- */

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	err := s.state.View(ctx, func(tx *state.Tx) error {
		rooms = tx.Rooms()
		return nil
	})
	return rooms, err
}

func (s *Service) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	var room domain.Room
	err := s.state.View(ctx, func(tx *state.Tx) error {
		r, ok := domain.FindRoom(tx.Rooms(), id)
		if !ok {
			return ErrRoomNotFound
		}
		room = r
		return nil
	})
	return room, err
}

/* ---------- ADMIN ---------- */

func (s *Service) AddRoom(ctx context.Context, req CreateRoomRequest) (domain.Room, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Room{}, ErrNameRequired
	}
	if req.Price < 0 {
		return domain.Room{}, ErrInvalidPrice
	}

	room := domain.Room{
		ID:          s.ids.NewID(),
		Name:        name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Amenities:   cleanAmenities(req.Amenities),
		CreatedAt:   s.clock.Now(),
	}

	err := s.state.Update(ctx, func(tx *state.Tx) error {
		tx.SetRooms(append(tx.Rooms(), room))
		return nil
	})
	if err != nil {
		return domain.Room{}, err
	}

	log.Info().Str("room_id", room.ID).Str("name", room.Name).Msg("room added")
	return room, nil
}

// UpdateRoom merges the non-nil fields of req into the room. Id and createdAt never change.
func (s *Service) UpdateRoom(ctx context.Context, id string, req UpdateRoomRequest) (domain.Room, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return domain.Room{}, ErrNameRequired
	}
	if req.Price != nil && *req.Price < 0 {
		return domain.Room{}, ErrInvalidPrice
	}

	var updated domain.Room
	err := s.state.Update(ctx, func(tx *state.Tx) error {
		rooms := tx.Rooms()
		idx := slices.IndexFunc(rooms, func(r domain.Room) bool { return r.ID == id })
		if idx < 0 {
			return ErrRoomNotFound
		}

		r := rooms[idx]
		if req.Name != nil {
			r.Name = strings.TrimSpace(*req.Name)
		}
		if req.Description != nil {
			r.Description = *req.Description
		}
		if req.Price != nil {
			r.Price = *req.Price
		}
		if req.Image != nil {
			r.Image = *req.Image
		}
		if req.Amenities != nil {
			r.Amenities = cleanAmenities(*req.Amenities)
		}

		rooms[idx] = r
		tx.SetRooms(rooms)
		updated = r
		return nil
	})
	return updated, err
}

// DeleteRoom removes the room only. Reservations and reviews that point at it stay.
func (s *Service) DeleteRoom(ctx context.Context, id string) error {
	err := s.state.Update(ctx, func(tx *state.Tx) error {
		rooms := tx.Rooms()
		idx := slices.IndexFunc(rooms, func(r domain.Room) bool { return r.ID == id })
		if idx < 0 {
			return ErrRoomNotFound
		}
		tx.SetRooms(slices.Delete(rooms, idx, idx+1))
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("room_id", id).Msg("room deleted")
	return nil
}

// cleanAmenities trims labels and drops empty and repeated ones, keeping first-seen order.
func cleanAmenities(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, a := range in {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
