package entity

import "time"

type Review struct {
	ID        int64     `db:"review_id"`
	MovieID   int64     `db:"movie_id"`
	UserID    *int64    `db:"user_id"`
	Rating    int       `db:"rating"` // 1-5
	Review    string    `db:"review"`
	CreatedAt time.Time `db:"created_at"`
}
