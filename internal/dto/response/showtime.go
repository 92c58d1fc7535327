package response

import (
	"time"

	"abc-cinemas/internal/data/entity"
)

type ShowtimeResponse struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movie_id"`
	Branch    string    `json:"branch"`
	Hall      string    `json:"hall"`
	ShowDate  string    `json:"show_date"`
	ShowTime  string    `json:"show_time"`
	CreatedAt time.Time `json:"created_at"`
}

func ShowtimeToResponse(showtime *entity.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:        showtime.ID,
		MovieID:   showtime.MovieID,
		Branch:    showtime.Branch,
		Hall:      showtime.Hall,
		ShowDate:  showtime.ShowDate.Format(entity.DateLayout),
		ShowTime:  showtime.ShowTime,
		CreatedAt: showtime.CreatedAt,
	}
}
