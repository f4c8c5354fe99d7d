package booking

import (
	"oceanbreeze/internal/domain"
)

type CreateReservationRequest struct {
	RoomID       string      `json:"roomId" binding:"required"`
	CheckInDate  domain.Date `json:"checkInDate"`
	CheckOutDate domain.Date `json:"checkOutDate"`
}

// ReservationView is a reservation joined with its room, as shown on "my reservations".
type ReservationView struct {
	domain.Reservation
	Room   domain.Room              `json:"room"`
	Nights int                      `json:"nights"`
	Status domain.ReservationStatus `json:"status"`
}

// Quote is the price preview for a stay before it is booked.
type Quote struct {
	RoomID        string      `json:"roomId"`
	CheckInDate   domain.Date `json:"checkInDate"`
	CheckOutDate  domain.Date `json:"checkOutDate"`
	Nights        int         `json:"nights"`
	PricePerNight float64     `json:"pricePerNight"`
	TotalPrice    float64     `json:"totalPrice"`
	Available     bool        `json:"available"`
}
