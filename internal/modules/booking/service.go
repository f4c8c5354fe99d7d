package booking

import (
	"context"
	"slices"

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

/* ---------- AVAILABILITY ---------- */

func (s *Service) AvailableRooms(ctx context.Context, checkIn, checkOut domain.Date) ([]domain.Room, error) {
	var rooms []domain.Room
	err := s.state.View(ctx, func(tx *state.Tx) error {
		rooms = AvailableRooms(tx.Rooms(), tx.Reservations(), checkIn, checkOut)
		return nil
	})
	return rooms, err
}

func (s *Service) IsRoomAvailable(ctx context.Context, roomID string, checkIn, checkOut domain.Date) (bool, error) {
	var ok bool
	err := s.state.View(ctx, func(tx *state.Tx) error {
		ok = IsRoomAvailable(tx.Reservations(), roomID, checkIn, checkOut)
		return nil
	})
	return ok, err
}

// Quote prices a stay without booking it.
func (s *Service) Quote(ctx context.Context, roomID string, checkIn, checkOut domain.Date) (Quote, error) {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return Quote{}, ErrInvalidDateRange
	}

	var q Quote
	err := s.state.View(ctx, func(tx *state.Tx) error {
		room, ok := domain.FindRoom(tx.Rooms(), roomID)
		if !ok {
			return ErrRoomNotFound
		}
		nights := Nights(checkIn, checkOut)
		q = Quote{
			RoomID:        room.ID,
			CheckInDate:   checkIn,
			CheckOutDate:  checkOut,
			Nights:        nights,
			PricePerNight: room.Price,
			TotalPrice:    room.Price * float64(nights),
			Available:     IsRoomAvailable(tx.Reservations(), room.ID, checkIn, checkOut),
		}
		return nil
	})
	return q, err
}

/* ---------- RESERVATIONS ---------- */

// CreateReservation books roomID for the session user. The availability check and the
// append happen under one lock, so two requests cannot take the same nights.
func (s *Service) CreateReservation(ctx context.Context, session *domain.SessionUser, roomID string, checkIn, checkOut domain.Date) (*domain.Reservation, error) {
	if session == nil {
		return nil, ErrNoSession
	}
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	var created domain.Reservation
	err := s.state.Update(ctx, func(tx *state.Tx) error {
		rooms := tx.Rooms()
		room, ok := domain.FindRoom(rooms, roomID)
		if !ok {
			return ErrRoomNotFound
		}

		reservations := tx.Reservations()
		available := AvailableRooms(rooms, reservations, checkIn, checkOut)
		if _, ok := domain.FindRoom(available, roomID); !ok {
			return ErrNotAvailable
		}

		created = domain.Reservation{
			ID:           s.ids.NewID(),
			UserID:       session.ID,
			RoomID:       room.ID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			TotalPrice:   room.Price * float64(Nights(checkIn, checkOut)),
			CreatedAt:    s.clock.Now(),
		}
		tx.SetReservations(append(reservations, created))
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("reservation_id", created.ID).
		Str("user_id", created.UserID).
		Str("room_id", created.RoomID).
		Str("check_in", created.CheckInDate.String()).
		Str("check_out", created.CheckOutDate.String()).
		Float64("total_price", created.TotalPrice).
		Msg("reservation created")

	return &created, nil
}

// MyReservations lists the session user's reservations, newest first.
// Reservations whose room no longer exists are left out.
func (s *Service) MyReservations(ctx context.Context, session *domain.SessionUser) ([]ReservationView, error) {
	if session == nil {
		return nil, ErrNoSession
	}

	today := domain.DateOf(s.clock.Now())
	views := []ReservationView{}
	err := s.state.View(ctx, func(tx *state.Tx) error {
		rooms := tx.Rooms()
		for _, r := range tx.Reservations() {
			if r.UserID != session.ID {
				continue
			}
			room, ok := domain.FindRoom(rooms, r.RoomID)
			if !ok {
				continue
			}
			views = append(views, ReservationView{
				Reservation: r,
				Room:        room,
				Nights:      Nights(r.CheckInDate, r.CheckOutDate),
				Status:      r.StatusOn(today),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(views, func(a, b ReservationView) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return views, nil
}
