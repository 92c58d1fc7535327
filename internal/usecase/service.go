package usecase

import (
	"fmt"

	"abc-cinemas/internal/data/repository"
	"abc-cinemas/pkg/apperrors"
	"abc-cinemas/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Branch   BranchService
	User     UserService
	Movie    MovieService
	Showtime ShowtimeService
	Booking  BookingService
	Review   ReviewService
	Status   StatusService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Branch:   NewBranchService(repo, log),
		User:     NewUserService(repo, config, log),
		Movie:    NewMovieService(repo, log),
		Showtime: NewShowtimeService(repo, log),
		Booking:  NewBookingService(repo, config, log),
		Review:   NewReviewService(repo, log),
		Status:   NewStatusService(repo, config),
	}
}

// validationError wraps a field map so callers can match apperrors.ErrValidation.
func validationError(errs map[string]string) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
}

func invalidField(field, msg string) error {
	return fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, field, msg)
}
