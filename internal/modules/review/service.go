package review

import (
	"context"
	"fmt"
	"math"
	"slices"
	"unicode/utf8"

	"oceanbreeze/internal/domain"
	"oceanbreeze/internal/pkg/clock"
	"oceanbreeze/internal/pkg/idgen"
	"oceanbreeze/internal/pkg/validator"
	"oceanbreeze/internal/state"

	"github.com/rs/zerolog/log"
)

// GuestName is shown for reviews whose author is no longer in the users collection.
const GuestName = "Guest"

var ratingRule = fmt.Sprintf("gte=%d,lte=%d", MinRating, MaxRating)

type Service struct {
	state *state.State
	clock clock.Clock
	ids   idgen.Generator
}

func NewService(st *state.State, clk clock.Clock, ids idgen.Generator) *Service {
	return &Service{state: st, clock: clk, ids: ids}
}

// AddReview stores the session user's review of a room. A second review of the same
// room replaces rating, comment and createdAt of the first and keeps its id.
func (s *Service) AddReview(ctx context.Context, session *domain.SessionUser, roomID string, rating int, comment string) (*domain.Review, error) {
	if session == nil {
		return nil, ErrNoSession
	}
	if err := validator.Var(rating, ratingRule); err != nil {
		return nil, ErrInvalidRating
	}
	if utf8.RuneCountInString(comment) > MaxCommentLength {
		return nil, ErrCommentTooLong
	}

	now := s.clock.Now()
	var saved domain.Review
	err := s.state.Update(ctx, func(tx *state.Tx) error {
		reviews := tx.Reviews()
		idx := slices.IndexFunc(reviews, func(r domain.Review) bool {
			return r.UserID == session.ID && r.RoomID == roomID
		})

		if idx >= 0 {
			reviews[idx].Rating = rating
			reviews[idx].Comment = comment
			reviews[idx].CreatedAt = now
			saved = reviews[idx]
		} else {
			saved = domain.Review{
				ID:        s.ids.NewID(),
				UserID:    session.ID,
				RoomID:    roomID,
				Rating:    rating,
				Comment:   comment,
				CreatedAt: now,
			}
			reviews = append(reviews, saved)
		}

		tx.SetReviews(reviews)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("review_id", saved.ID).Str("room_id", roomID).Int("rating", rating).Msg("review saved")
	return &saved, nil
}

// RoomReviews returns the room's reviews in stored order.
func (s *Service) RoomReviews(ctx context.Context, roomID string) ([]domain.Review, error) {
	out := []domain.Review{}
	err := s.state.View(ctx, func(tx *state.Tx) error {
		out = roomReviews(tx.Reviews(), roomID)
		return nil
	})
	return out, err
}

// AverageRating is the mean rating rounded half-up to one decimal, 0 without reviews.
func (s *Service) AverageRating(ctx context.Context, roomID string) (float64, error) {
	summary, err := s.Rating(ctx, roomID)
	return summary.Average, err
}

func (s *Service) Rating(ctx context.Context, roomID string) (RatingSummary, error) {
	reviews, err := s.RoomReviews(ctx, roomID)
	if err != nil {
		return RatingSummary{}, err
	}
	return RatingSummary{
		RoomID:  roomID,
		Average: averageRating(reviews),
		Count:   len(reviews),
	}, nil
}

// RoomReviewDetails lists the room's reviews newest first with author names.
func (s *Service) RoomReviewDetails(ctx context.Context, roomID string) ([]ReviewDetails, error) {
	out := []ReviewDetails{}
	err := s.state.View(ctx, func(tx *state.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		names := make(map[string]string, len(users))
		for _, u := range users {
			names[u.ID] = u.FullName
		}

		for _, r := range roomReviews(tx.Reviews(), roomID) {
			name, ok := names[r.UserID]
			if !ok || name == "" {
				name = GuestName
			}
			out = append(out, ReviewDetails{Review: r, AuthorName: name})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(out, func(a, b ReviewDetails) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func roomReviews(all []domain.Review, roomID string) []domain.Review {
	out := []domain.Review{}
	for _, r := range all {
		if r.RoomID == roomID {
			out = append(out, r)
		}
	}
	return out
}

func averageRating(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Floor(mean*10+0.5) / 10
}
