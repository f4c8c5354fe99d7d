package admin

import "oceanbreeze/internal/domain"

type Stats struct {
	TotalRooms        int     `json:"totalRooms"`
	TotalReservations int     `json:"totalReservations"`
	TotalRevenue      float64 `json:"totalRevenue"`
	OccupancyRate     int     `json:"occupancyRate"`
}

// ReservationRow is one line of the admin reservations table. RoomName and GuestName
// are empty when the room or user no longer exists.
type ReservationRow struct {
	domain.Reservation
	RoomName  string `json:"roomName"`
	GuestName string `json:"guestName"`
}
