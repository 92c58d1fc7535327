package entity

import (
	"time"
)

type Movie struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Genre       string    `db:"genre"`
	Duration    int       `db:"duration"` // minutes
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// MovieReviewStats summarises the reviews of one movie.
type MovieReviewStats struct {
	AverageRating float64
	ReviewCount   int64
}
