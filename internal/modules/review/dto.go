package review

import "oceanbreeze/internal/domain"

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 280
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ReviewDetails is a review with its author's display name.
type ReviewDetails struct {
	domain.Review
	AuthorName string `json:"authorName"`
}

type RatingSummary struct {
	RoomID  string  `json:"roomId"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
