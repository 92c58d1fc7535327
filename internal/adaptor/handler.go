package adaptor

import (
	"abc-cinemas/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Branch   *BranchHandler
	User     *UserHandler
	Movie    *MovieHandler
	Showtime *ShowtimeHandler
	Booking  *BookingHandler
	Review   *ReviewHandler
	Status   *StatusHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Branch:   NewBranchHandler(service.Branch, log),
		User:     NewUserHandler(service.User, log),
		Movie:    NewMovieHandler(service.Movie, log),
		Showtime: NewShowtimeHandler(service.Showtime, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Review:   NewReviewHandler(service.Review, log),
		Status:   NewStatusHandler(service.Status),
	}
}
