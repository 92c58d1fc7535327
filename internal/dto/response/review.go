package response

import (
	"time"

	"abc-cinemas/internal/data/entity"
)

type ReviewResponse struct {
	ID        int64     `json:"review_id"`
	MovieID   int64     `json:"movie_id"`
	UserID    *int64    `json:"user_id"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		MovieID:   review.MovieID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Review:    review.Review,
		CreatedAt: review.CreatedAt,
	}
}
