package entity

import (
	"time"
)

type Showtime struct {
	ID        int64     `db:"id"`
	MovieID   int64     `db:"movie_id"`
	Branch    string    `db:"branch"`
	Hall      string    `db:"hall"`
	ShowDate  time.Time `db:"show_date"`
	ShowTime  string    `db:"show_time"` // HH:MM
	CreatedAt time.Time `db:"created_at"`
}

// Showing returns the key that seats for this showtime are sold under.
func (s *Showtime) Showing() ShowingKey {
	return ShowingKey{Branch: s.Branch, Hall: s.Hall, ShowDate: s.ShowDate, ShowTime: s.ShowTime}
}

// ShowtimeSlot is one hall/time option for a movie at a branch on a date.
type ShowtimeSlot struct {
	Hall     string `db:"hall"`
	ShowTime string `db:"show_time"`
}

// ShowtimeFilter narrows a showtime listing. Nil fields are ignored.
type ShowtimeFilter struct {
	Branch   *string
	MovieID  *int64
	ShowDate *time.Time
}
