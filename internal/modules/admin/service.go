package admin

import (
	"context"
	"math"
	"slices"

	"oceanbreeze/internal/domain"
	"oceanbreeze/internal/state"
)

type Service struct {
	state *state.State
}

func NewService(st *state.State) *Service {
	return &Service{state: st}
}

// -------------------- Statistics --------------------

// Stats summarises the inventory. Occupancy is reservations per room as a rounded
// percentage and can exceed 100.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.state.View(ctx, func(tx *state.Tx) error {
		rooms := tx.Rooms()
		reservations := tx.Reservations()

		st.TotalRooms = len(rooms)
		st.TotalReservations = len(reservations)
		for _, r := range reservations {
			st.TotalRevenue += r.TotalPrice
		}
		if st.TotalRooms > 0 {
			st.OccupancyRate = int(math.Round(float64(st.TotalReservations) / float64(st.TotalRooms) * 100))
		}
		return nil
	})
	return st, err
}

// -------------------- Reservations --------------------

// Reservations lists every reservation whose room still exists, newest first.
func (s *Service) Reservations(ctx context.Context) ([]ReservationRow, error) {
	rows := []ReservationRow{}
	err := s.state.View(ctx, func(tx *state.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		guests := make(map[string]string, len(users))
		for _, u := range users {
			guests[u.ID] = u.FullName
		}
		rooms := tx.Rooms()

		for _, r := range tx.Reservations() {
			room, ok := domain.FindRoom(rooms, r.RoomID)
			if !ok {
				continue
			}
			rows = append(rows, ReservationRow{
				Reservation: r,
				RoomName:    room.Name,
				GuestName:   guests[r.UserID],
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(rows, func(a, b ReservationRow) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return rows, nil
}

// -------------------- Users --------------------

// Users lists registered accounts without passwords.
func (s *Service) Users(ctx context.Context) ([]domain.SessionUser, error) {
	out := []domain.SessionUser{}
	err := s.state.View(ctx, func(tx *state.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		for _, u := range users {
			out = append(out, u.Strip())
		}
		return nil
	})
	return out, err
}
