package auth

import (
	"context"
	"slices"

	"oceanbreeze/internal/domain"
	"oceanbreeze/internal/pkg/clock"
	"oceanbreeze/internal/pkg/idgen"
	"oceanbreeze/internal/state"

	"github.com/rs/zerolog/log"
)

// Service owns the users collection and the single active session.
// Passwords are compared as stored; there is no hashing.
type Service struct {
	state *state.State
	clock clock.Clock
	ids   idgen.Generator
}

func NewService(st *state.State, clk clock.Clock, ids idgen.Generator) *Service {
	return &Service{state: st, clock: clk, ids: ids}
}

// Current returns the active session, or nil when nobody is logged in.
func (s *Service) Current() *domain.SessionUser {
	return s.state.Session()
}

// Login replaces the session on an exact username and password match.
// A failed attempt leaves the existing session alone.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.SessionUser, error) {
	var session domain.SessionUser
	err := s.state.Update(ctx, func(tx *state.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		idx := slices.IndexFunc(users, func(u domain.StoredUser) bool {
			return u.Username == username && u.Password == password
		})
		if idx < 0 {
			return ErrInvalidCredentials
		}

		session = users[idx].Strip()
		tx.SetSession(&session)
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("username", username).Msg("login failed")
		return nil, err
	}

	log.Info().Str("user_id", session.ID).Msg("user logged in")
	return &session, nil
}

// Register appends a new user and logs them in. The first registration into an empty
// collection also creates the demo admin and demo user accounts.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.SessionUser, error) {
	now := s.clock.Now()
	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}

	var session domain.SessionUser
	err := s.state.Update(ctx, func(tx *state.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		if len(users) == 0 {
			users = DemoUsers(now)
		}

		for _, u := range users {
			if u.Username == req.Username {
				return ErrUsernameTaken
			}
			if u.Email == req.Email {
				return ErrEmailTaken
			}
		}

		created := domain.StoredUser{
			SessionUser: domain.SessionUser{
				ID:           s.ids.NewID(),
				Username:     req.Username,
				Email:        req.Email,
				FullName:     req.FullName,
				DateOfBirth:  req.DateOfBirth,
				ProfilePhoto: req.ProfilePhoto,
				Role:         role,
				CreatedAt:    now,
			},
			Password: req.Password,
		}
		tx.SetUsers(append(users, created))

		session = created.Strip()
		tx.SetSession(&session)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("user_id", session.ID).Str("username", session.Username).Msg("user registered")
	return &session, nil
}

// Logout clears the session. Calling it with nobody logged in is fine.
func (s *Service) Logout(ctx context.Context) error {
	return s.state.Update(ctx, func(tx *state.Tx) error {
		tx.SetSession(nil)
		return nil
	})
}

// UpdateProfile merges the set fields of req into the session user's stored record
// and into the session itself.
func (s *Service) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*domain.SessionUser, error) {
	var session domain.SessionUser
	err := s.state.Update(ctx, func(tx *state.Tx) error {
		current := tx.Session()
		if current == nil {
			return ErrNoSession
		}

		users, err := tx.Users()
		if err != nil {
			return err
		}
		idx := slices.IndexFunc(users, func(u domain.StoredUser) bool { return u.ID == current.ID })
		if idx < 0 {
			return ErrUserNotFound
		}

		if req.Email != nil && *req.Email != users[idx].Email {
			taken := slices.ContainsFunc(users, func(u domain.StoredUser) bool {
				return u.ID != current.ID && u.Email == *req.Email
			})
			if taken {
				return ErrEmailTaken
			}
		}

		u := users[idx]
		if req.Email != nil {
			u.Email = *req.Email
		}
		if req.FullName != nil {
			u.FullName = *req.FullName
		}
		if req.DateOfBirth != nil {
			u.DateOfBirth = *req.DateOfBirth
		}
		if req.ProfilePhoto != nil {
			u.ProfilePhoto = *req.ProfilePhoto
		}
		if req.Password != nil {
			u.Password = *req.Password
		}
		users[idx] = u
		tx.SetUsers(users)

		session = u.Strip()
		tx.SetSession(&session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}
