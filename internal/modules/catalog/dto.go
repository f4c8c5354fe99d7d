package catalog

// CreateRoomRequest is the body of POST /admin/rooms.
type CreateRoomRequest struct {
	Name        string   `json:"name" binding:"required" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"gte=0" validate:"gte=0"`
	Image       string   `json:"image"`
	Amenities   []string `json:"amenities"`
}

// UpdateRoomRequest is a partial patch; nil fields are left as they are.
type UpdateRoomRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty" binding:"omitempty,gte=0" validate:"omitempty,gte=0"`
	Image       *string   `json:"image,omitempty"`
	Amenities   *[]string `json:"amenities,omitempty"`
}
