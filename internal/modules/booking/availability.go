package booking

import "oceanbreeze/internal/domain"

// AvailableRooms returns the rooms with no reservation overlapping [checkIn, checkOut),
// in their original order. When either date is missing every room is returned.
func AvailableRooms(rooms []domain.Room, reservations []domain.Reservation, checkIn, checkOut domain.Date) []domain.Room {
	if checkIn.IsZero() || checkOut.IsZero() {
		return rooms
	}

	out := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if IsRoomAvailable(reservations, room.ID, checkIn, checkOut) {
			out = append(out, room)
		}
	}
	return out
}

// IsRoomAvailable reports whether no reservation for roomID overlaps the stay.
func IsRoomAvailable(reservations []domain.Reservation, roomID string, checkIn, checkOut domain.Date) bool {
	want := domain.Stay{CheckIn: checkIn, CheckOut: checkOut}
	for _, r := range reservations {
		if r.RoomID == roomID && r.Stay().Overlaps(want) {
			return false
		}
	}
	return true
}

// Nights is the number of nights between two dates, partial days rounded up.
func Nights(checkIn, checkOut domain.Date) int {
	return domain.DaysBetween(checkIn, checkOut)
}
