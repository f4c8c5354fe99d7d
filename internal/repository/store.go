package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"oceanbreeze/internal/domain"
	"oceanbreeze/internal/storage"
)

const (
	KeyRooms        = "oceanbreeze_rooms"
	KeyReservations = "oceanbreeze_reservations"
	KeyReviews      = "oceanbreeze_reviews"
	KeyUsers        = "oceanbreeze_users"
	KeySession      = "oceanbreeze_user"
)

var AllKeys = []string{KeyRooms, KeyReservations, KeyReviews, KeyUsers, KeySession}

// Store reads and writes whole collections. There is no partial update:
// every save replaces the stored list.
type Store struct {
	kv storage.KV
}

func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// LoadRooms reports found=false when the rooms key has never been written,
// which is the signal to seed the default catalogue.
func (s *Store) LoadRooms(ctx context.Context) ([]domain.Room, bool, error) {
	return loadList[domain.Room](ctx, s.kv, KeyRooms)
}

func (s *Store) SaveRooms(ctx context.Context, rooms []domain.Room) error {
	return saveList(ctx, s.kv, KeyRooms, rooms)
}

func (s *Store) LoadReservations(ctx context.Context) ([]domain.Reservation, error) {
	items, _, err := loadList[domain.Reservation](ctx, s.kv, KeyReservations)
	return items, err
}

func (s *Store) SaveReservations(ctx context.Context, items []domain.Reservation) error {
	return saveList(ctx, s.kv, KeyReservations, items)
}

func (s *Store) LoadReviews(ctx context.Context) ([]domain.Review, error) {
	items, _, err := loadList[domain.Review](ctx, s.kv, KeyReviews)
	return items, err
}

func (s *Store) SaveReviews(ctx context.Context, items []domain.Review) error {
	return saveList(ctx, s.kv, KeyReviews, items)
}

func (s *Store) LoadUsers(ctx context.Context) ([]domain.StoredUser, error) {
	items, _, err := loadList[domain.StoredUser](ctx, s.kv, KeyUsers)
	return items, err
}

func (s *Store) SaveUsers(ctx context.Context, users []domain.StoredUser) error {
	return saveList(ctx, s.kv, KeyUsers, users)
}

// LoadSession returns nil when nobody is logged in or the stored value is unreadable.
func (s *Store) LoadSession(ctx context.Context) (*domain.SessionUser, error) {
	raw, err := s.kv.Get(ctx, KeySession)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var u domain.SessionUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil || u.ID == "" {
		log.Warn().Err(err).Str("key", KeySession).Msg("discarding unreadable session")
		return nil, nil
	}
	return &u, nil
}

func (s *Store) SaveSession(ctx context.Context, u domain.SessionUser) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.kv.Set(ctx, KeySession, string(b)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.kv.Remove(ctx, KeySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Reset removes every key this store owns.
func (s *Store) Reset(ctx context.Context) error {
	for _, key := range AllKeys {
		if err := s.kv.Remove(ctx, key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return nil
}

func loadList[T any](ctx context.Context, kv storage.KV, key string) ([]T, bool, error) {
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return []T{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("malformed collection, using empty list")
		return []T{}, true, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, true, nil
}

func saveList[T any](ctx context.Context, kv storage.KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
