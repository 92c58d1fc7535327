package request

type MovieRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"max=5000"`
	Genre       string `json:"genre" validate:"max=100"`
	Duration    int    `json:"duration" validate:"required,min=1,max=999"`
}

type MovieUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Genre       *string `json:"genre,omitempty" validate:"omitempty,max=100"`
	Duration    *int    `json:"duration,omitempty" validate:"omitempty,min=1,max=999"`
}
