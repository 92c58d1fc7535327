package request

import "strings"

type ShowtimeRequest struct {
	MovieID  int64  `json:"movie_id" validate:"required,min=1"`
	Branch   string `json:"branch" validate:"required,max=100"`
	Hall     string `json:"hall" validate:"required,max=50"`
	ShowDate string `json:"show_date" validate:"required,datetime=2006-01-02"`
	ShowTime string `json:"show_time" validate:"required"`
}

type ShowtimeListQuery struct {
	Branch  *string
	MovieID *int64
	Date    *string `validate:"omitempty,datetime=2006-01-02"`
}

func (r *ShowtimeRequest) Normalize() {
	r.Branch = strings.TrimSpace(r.Branch)
	r.Hall = strings.TrimSpace(r.Hall)
	r.ShowDate = strings.TrimSpace(r.ShowDate)
	r.ShowTime = strings.TrimSpace(r.ShowTime)
}
