package request

type CreateReviewRequest struct {
	MovieID int64  `json:"movie_id" validate:"required,min=1"`
	UserID  *int64 `json:"user_id,omitempty" validate:"omitempty,min=1"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Review  string `json:"review" validate:"max=2000"`
}

type UpdateReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"required,max=2000"`
}
