// Package state holds the application state shared by every service: the room,
// reservation and review collections and the active session, loaded once at
// startup and written back through the store on each mutation.
package state

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"

	"oceanbreeze/internal/domain"
	"oceanbreeze/internal/repository"
)

type State struct {
	mu    sync.RWMutex
	store *repository.Store

	rooms        []domain.Room
	reservations []domain.Reservation
	reviews      []domain.Review
	session      *domain.SessionUser
}

func New(store *repository.Store) *State {
	return &State{
		store:        store,
		rooms:        []domain.Room{},
		reservations: []domain.Reservation{},
		reviews:      []domain.Review{},
	}
}

// Load reads every collection from the store. If the rooms key has never been
// written, seed becomes the catalogue and is persisted.
func (s *State) Load(ctx context.Context, seed []domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rooms, found, err := s.store.LoadRooms(ctx)
	if err != nil {
		return err
	}
	if !found {
		rooms = slices.Clone(seed)
		if rooms == nil {
			rooms = []domain.Room{}
		}
		if err := s.store.SaveRooms(ctx, rooms); err != nil {
			return err
		}
		log.Info().Int("rooms", len(rooms)).Msg("seeded default room catalogue")
	}

	reservations, err := s.store.LoadReservations(ctx)
	if err != nil {
		return err
	}
	reviews, err := s.store.LoadReviews(ctx)
	if err != nil {
		return err
	}
	session, err := s.store.LoadSession(ctx)
	if err != nil {
		return err
	}

	s.rooms = rooms
	s.reservations = reservations
	s.reviews = reviews
	s.session = session
	return nil
}

// Session returns a copy of the active session, or nil.
func (s *State) Session() *domain.SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySession(s.session)
}

// View runs fn against a consistent snapshot. fn must not call any Set method.
func (s *State) View(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.begin(ctx, true))
}

// Update runs fn with exclusive access. Collections fn replaced are written
// back whole, then swapped into memory. If fn fails nothing is written.
func (s *State) Update(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.begin(ctx, false)
	if err := fn(tx); err != nil {
		return err
	}
	return s.commit(ctx, tx)
}

func (s *State) begin(ctx context.Context, readOnly bool) *Tx {
	return &Tx{
		ctx:          ctx,
		store:        s.store,
		readOnly:     readOnly,
		rooms:        s.rooms,
		reservations: s.reservations,
		reviews:      s.reviews,
		session:      s.session,
	}
}

func (s *State) commit(ctx context.Context, tx *Tx) error {
	if tx.usersDirty {
		if err := s.store.SaveUsers(ctx, tx.users); err != nil {
			return err
		}
	}
	if tx.roomsDirty {
		if err := s.store.SaveRooms(ctx, tx.rooms); err != nil {
			return err
		}
		s.rooms = tx.rooms
	}
	if tx.reservationsDirty {
		if err := s.store.SaveReservations(ctx, tx.reservations); err != nil {
			return err
		}
		s.reservations = tx.reservations
	}
	if tx.reviewsDirty {
		if err := s.store.SaveReviews(ctx, tx.reviews); err != nil {
			return err
		}
		s.reviews = tx.reviews
	}
	if tx.sessionDirty {
		if tx.session == nil {
			if err := s.store.ClearSession(ctx); err != nil {
				return err
			}
		} else if err := s.store.SaveSession(ctx, *tx.session); err != nil {
			return err
		}
		s.session = tx.session
	}
	return nil
}

// Tx is the view of the state handed to View and Update callbacks.
// Getters return copies, so callers may build the next collection in place.
type Tx struct {
	ctx      context.Context
	store    *repository.Store
	readOnly bool

	rooms        []domain.Room
	reservations []domain.Reservation
	reviews      []domain.Review
	session      *domain.SessionUser
	users        []domain.StoredUser
	usersLoaded  bool

	roomsDirty        bool
	reservationsDirty bool
	reviewsDirty      bool
	usersDirty        bool
	sessionDirty      bool
}

func (tx *Tx) Rooms() []domain.Room { return slices.Clone(tx.rooms) }
func (tx *Tx) Reservations() []domain.Reservation { return slices.Clone(tx.reservations) }
func (tx *Tx) Reviews() []domain.Review { return slices.Clone(tx.reviews) }
func (tx *Tx) Session() *domain.SessionUser { return copySession(tx.session) }

// Users reads the users collection from the store on first use in this transaction.
func (tx *Tx) Users() ([]domain.StoredUser, error) {
	if !tx.usersLoaded {
		users, err := tx.store.LoadUsers(tx.ctx)
		if err != nil {
			return nil, fmt.Errorf("users: %w", err)
		}
		tx.users = users
		tx.usersLoaded = true
	}
	return slices.Clone(tx.users), nil
}

func (tx *Tx) SetRooms(rooms []domain.Room) {
	tx.mustWrite()
	tx.rooms = nonNil(slices.Clone(rooms))
	tx.roomsDirty = true
}

func (tx *Tx) SetReservations(items []domain.Reservation) {
	tx.mustWrite()
	tx.reservations = nonNil(slices.Clone(items))
	tx.reservationsDirty = true
}

func (tx *Tx) SetReviews(items []domain.Review) {
	tx.mustWrite()
	tx.reviews = nonNil(slices.Clone(items))
	tx.reviewsDirty = true
}

func (tx *Tx) SetUsers(users []domain.StoredUser) {
	tx.mustWrite()
	tx.users = nonNil(slices.Clone(users))
	tx.usersLoaded = true
	tx.usersDirty = true
}

// SetSession replaces the active session; nil logs out.
func (tx *Tx) SetSession(u *domain.SessionUser) {
	tx.mustWrite()
	tx.session = copySession(u)
	tx.sessionDirty = true
}

func (tx *Tx) mustWrite() {
	if tx.readOnly {
		panic("state: write inside View")
	}
}

func copySession(u *domain.SessionUser) *domain.SessionUser {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
