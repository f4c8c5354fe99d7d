package domain

import "time"

type Reservation struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	RoomID       string    `json:"roomId"`
	CheckInDate  Date      `json:"checkInDate"`
	CheckOutDate Date      `json:"checkOutDate"`
	TotalPrice   float64   `json:"totalPrice"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r Reservation) Stay() Stay {
	return Stay{CheckIn: r.CheckInDate, CheckOut: r.CheckOutDate}
}

// Stay is a half-open range of nights: the guest arrives on CheckIn and leaves on CheckOut.
type Stay struct {
	CheckIn  Date
	CheckOut Date
}

// Overlaps reports whether two stays share at least one night.
// A checkout and a check-in on the same day do not conflict.
func (s Stay) Overlaps(o Stay) bool {
	return s.CheckIn.Before(o.CheckOut) && s.CheckOut.After(o.CheckIn)
}

func (s Stay) Nights() int {
	return DaysBetween(s.CheckIn, s.CheckOut)
}

type ReservationStatus string

const (
	ReservationUpcoming  ReservationStatus = "upcoming"
	ReservationActive    ReservationStatus = "active"
	ReservationCompleted ReservationStatus = "completed"
)

// StatusOn classifies the reservation relative to the given day.
func (r Reservation) StatusOn(today Date) ReservationStatus {
	switch {
	case today.Before(r.CheckInDate):
		return ReservationUpcoming
	case !today.After(r.CheckOutDate):
		return ReservationActive
	default:
		return ReservationCompleted
	}
}
