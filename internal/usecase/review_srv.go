package usecase

import (
	"context"
	"fmt"
	"strings"

	"abc-cinemas/internal/data/entity"
	"abc-cinemas/internal/data/repository"
	"abc-cinemas/internal/dto/request"
	"abc-cinemas/internal/dto/response"
	"abc-cinemas/pkg/apperrors"
	"abc-cinemas/pkg/utils"

	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetReviews(ctx context.Context, movieID *int64) ([]response.ReviewResponse, error)
	GetReviewByID(ctx context.Context, reviewID int64) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, reviewID int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID int64) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	exists, err := s.repo.Movie.Exists(ctx, req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("check movie: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("movie %d: %w", req.MovieID, apperrors.ErrReferential)
	}

	review := &entity.Review{
		MovieID: req.MovieID,
		UserID:  req.UserID,
		Rating:  req.Rating,
		Review:  strings.TrimSpace(req.Review),
	}

	// user_id FK violations come back from storage as ErrReferential
	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("movie_id", review.MovieID),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetReviews(ctx context.Context, movieID *int64) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindAll(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	out := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = response.ReviewToResponse(review)
	}
	return out, nil
}

func (s *reviewService) GetReviewByID(ctx context.Context, reviewID int64) (*response.ReviewResponse, error) {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("get review %d: %w", reviewID, err)
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	review := &entity.Review{
		ID:     reviewID,
		Rating: req.Rating,
		Review: strings.TrimSpace(req.Review),
	}

	if err := s.repo.Review.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID int64) error {
	if err := s.repo.Review.Delete(ctx, reviewID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted", zap.Int64("review_id", reviewID))
	return nil
}
