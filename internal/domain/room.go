package domain

import "time"

type Room struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Amenities   []string  `json:"amenities"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FindRoom(rooms []Room, id string) (Room, bool) {
	for _, r := range rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}
