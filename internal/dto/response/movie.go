package response

import (
	"time"

	"abc-cinemas/internal/data/entity"
)

type MovieResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genre       string    `json:"genre"`
	Duration    int       `json:"duration"`
	CreatedAt   time.Time `json:"created_at"`
}

type MovieDetailResponse struct {
	MovieResponse
	Rating      float64   `json:"rating"`
	ReviewCount int64     `json:"review_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Genre:       movie.Genre,
		Duration:    movie.Duration,
		CreatedAt:   movie.CreatedAt,
	}
}

func MovieToDetailResponse(movie *entity.Movie, stats entity.MovieReviewStats) MovieDetailResponse {
	return MovieDetailResponse{
		MovieResponse: MovieToResponse(movie),
		Rating:        stats.AverageRating,
		ReviewCount:   stats.ReviewCount,
		UpdatedAt:     movie.UpdatedAt,
	}
}
