package usecase

import (
	"context"
	"fmt"

	"abc-cinemas/internal/data/entity"
	"abc-cinemas/internal/data/repository"
	"abc-cinemas/internal/dto/request"
	"abc-cinemas/internal/dto/response"
	"abc-cinemas/pkg/apperrors"
	"abc-cinemas/pkg/utils"

	"go.uber.org/zap"
)

type ShowtimeService interface {
	GetShowtimes(ctx context.Context, query *request.ShowtimeListQuery) ([]response.ShowtimeResponse, error)
	GetShowtimeByID(ctx context.Context, showtimeID int64) (*response.ShowtimeResponse, error)
	CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error)
	UpdateShowtime(ctx context.Context, showtimeID int64, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error)
	DeleteShowtime(ctx context.Context, showtimeID int64) error
}

type showtimeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo: repo,
		log:  log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) GetShowtimes(ctx context.Context, query *request.ShowtimeListQuery) ([]response.ShowtimeResponse, error) {
	if errs := utils.ValidateStruct(query); len(errs) > 0 {
		return nil, validationError(errs)
	}

	filter := entity.ShowtimeFilter{Branch: query.Branch, MovieID: query.MovieID}
	if query.Date != nil {
		date, err := entity.ParseShowDate(*query.Date)
		if err != nil {
			return nil, invalidField("date", "must be YYYY-MM-DD")
		}
		filter.ShowDate = &date
	}

	showtimes, err := s.repo.Showtime.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get showtimes: %w", err)
	}

	out := make([]response.ShowtimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		out[i] = response.ShowtimeToResponse(showtime)
	}
	return out, nil
}

func (s *showtimeService) GetShowtimeByID(ctx context.Context, showtimeID int64) (*response.ShowtimeResponse, error) {
	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("get showtime %d: %w", showtimeID, err)
	}

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	showtime, err := s.buildShowtime(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	s.log.Info("Showtime created",
		zap.Int64("showtime_id", showtime.ID),
		zap.String("showing", showtime.Showing().String()),
	)

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) UpdateShowtime(ctx context.Context, showtimeID int64, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	showtime, err := s.buildShowtime(ctx, req)
	if err != nil {
		return nil, err
	}
	showtime.ID = showtimeID

	if err := s.repo.Showtime.Update(ctx, showtime); err != nil {
		return nil, fmt.Errorf("update showtime: %w", err)
	}

	s.log.Info("Showtime updated", zap.Int64("showtime_id", showtimeID))

	updated, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("get showtime %d: %w", showtimeID, err)
	}

	resp := response.ShowtimeToResponse(updated)
	return &resp, nil
}

func (s *showtimeService) DeleteShowtime(ctx context.Context, showtimeID int64) error {
	if err := s.repo.Showtime.Delete(ctx, showtimeID); err != nil {
		return fmt.Errorf("delete showtime: %w", err)
	}

	s.log.Info("Showtime deleted", zap.Int64("showtime_id", showtimeID))
	return nil
}

func (s *showtimeService) buildShowtime(ctx context.Context, req *request.ShowtimeRequest) (*entity.Showtime, error) {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Showtime validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	key, err := showingKey(req.Branch, req.Hall, req.ShowDate, req.ShowTime)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.Movie.Exists(ctx, req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("check movie: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("movie %d: %w", req.MovieID, apperrors.ErrReferential)
	}

	return &entity.Showtime{
		MovieID:  req.MovieID,
		Branch:   key.Branch,
		Hall:     key.Hall,
		ShowDate: key.ShowDate,
		ShowTime: key.ShowTime,
	}, nil
}
