package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"abc-cinemas/internal/data/entity"
	"abc-cinemas/internal/data/repository"
	"abc-cinemas/internal/dto/request"
	"abc-cinemas/internal/mocks"
	"abc-cinemas/internal/usecase"
	"abc-cinemas/pkg/apperrors"
	"abc-cinemas/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetMovieByIDWithStats(t *testing.T) {
	movieRepo := new(mocks.MockMovieRepo)
	reviewRepo := new(mocks.MockReviewRepo)
	service := usecase.NewMovieService(&repository.Repository{Movie: movieRepo, Review: reviewRepo}, zap.NewNop())

	movieRepo.On("FindByID", mock.Anything, int64(3)).Return(&entity.Movie{ID: 3, Title: "Dune", Duration: 155}, nil)
	reviewRepo.On("GetMovieReviewStats", mock.Anything, int64(3)).
		Return(entity.MovieReviewStats{AverageRating: 4.5, ReviewCount: 2}, nil)

	movie, err := service.GetMovieByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "Dune", movie.Title)
	assert.Equal(t, 4.5, movie.Rating)
	assert.Equal(t, int64(2), movie.ReviewCount)
}

func TestGetMovieByIDStatsFailureStillServesMovie(t *testing.T) {
	movieRepo := new(mocks.MockMovieRepo)
	reviewRepo := new(mocks.MockReviewRepo)
	service := usecase.NewMovieService(&repository.Repository{Movie: movieRepo, Review: reviewRepo}, zap.NewNop())

	movieRepo.On("FindByID", mock.Anything, int64(3)).Return(&entity.Movie{ID: 3, Title: "Dune"}, nil)
	reviewRepo.On("GetMovieReviewStats", mock.Anything, int64(3)).
		Return(entity.MovieReviewStats{}, fmt.Errorf("stats: %w", apperrors.ErrStorage))

	movie, err := service.GetMovieByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Zero(t, movie.Rating)
	assert.Zero(t, movie.ReviewCount)
}

func TestGetMovieByIDNotFound(t *testing.T) {
	movieRepo := new(mocks.MockMovieRepo)
	service := usecase.NewMovieService(&repository.Repository{Movie: movieRepo}, zap.NewNop())

	movieRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, fmt.Errorf("movie: %w", apperrors.ErrNotFound))

	_, err := service.GetMovieByID(context.Background(), 99)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetMoviesPagination(t *testing.T) {
	movieRepo := new(mocks.MockMovieRepo)
	service := usecase.NewMovieService(&repository.Repository{Movie: movieRepo}, zap.NewNop())

	genre := "Sci-Fi"
	movieRepo.On("FindAll", mock.Anything, 2, 2, &genre).Return([]*entity.Movie{{ID: 3, Title: "Dune"}}, nil)
	movieRepo.On("CountAll", mock.Anything, &genre).Return(int64(3), nil)

	page, err := service.GetMovies(context.Background(), &request.PaginatedRequest{Page: 2, PerPage: 2}, &genre)

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.Equal(t, int64(3), page.Pagination.Total)
}

func TestCreateShowtime(t *testing.T) {
	tests := []struct {
		name        string
		movieExists bool
		createErr   error
		wantErr     error
	}{
		{name: "scheduled", movieExists: true},
		{name: "unknown movie", movieExists: false, wantErr: apperrors.ErrReferential},
		{name: "slot taken", movieExists: true, createErr: fmt.Errorf("insert: %w", apperrors.ErrAlreadyExists), wantErr: apperrors.ErrAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movieRepo := new(mocks.MockMovieRepo)
			showtimeRepo := new(mocks.MockShowtimeRepo)
			service := usecase.NewShowtimeService(&repository.Repository{Movie: movieRepo, Showtime: showtimeRepo}, zap.NewNop())

			movieRepo.On("Exists", mock.Anything, int64(3)).Return(tt.movieExists, nil)
			showtimeRepo.On("Create", mock.Anything, mock.MatchedBy(func(st *entity.Showtime) bool {
				return st.Branch == "Downtown" && st.ShowTime == "09:05"
			})).Return(tt.createErr).Maybe()

			resp, err := service.CreateShowtime(context.Background(), &request.ShowtimeRequest{
				MovieID:  3,
				Branch:   "Downtown ",
				Hall:     "Hall 1",
				ShowDate: "2024-05-01",
				ShowTime: "09:05:00",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2024-05-01", resp.ShowDate)
			assert.Equal(t, "09:05", resp.ShowTime)
		})
	}
}

func TestGetShowtimesFilter(t *testing.T) {
	showtimeRepo := new(mocks.MockShowtimeRepo)
	service := usecase.NewShowtimeService(&repository.Repository{Showtime: showtimeRepo}, zap.NewNop())

	date := "2024-05-01"
	showtimeRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(f entity.ShowtimeFilter) bool {
		return f.Branch == nil && f.MovieID == nil &&
			f.ShowDate != nil && f.ShowDate.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	})).Return([]*entity.Showtime{}, nil)

	showtimes, err := service.GetShowtimes(context.Background(), &request.ShowtimeListQuery{Date: &date})

	require.NoError(t, err)
	assert.Empty(t, showtimes)

	bad := "May 1st"
	_, err = service.GetShowtimes(context.Background(), &request.ShowtimeListQuery{Date: &bad})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateReview(t *testing.T) {
	movieRepo := new(mocks.MockMovieRepo)
	reviewRepo := new(mocks.MockReviewRepo)
	service := usecase.NewReviewService(&repository.Repository{Movie: movieRepo, Review: reviewRepo}, zap.NewNop())

	movieRepo.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	movieRepo.On("Exists", mock.Anything, int64(4)).Return(false, nil)
	reviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Review")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.Review).ID = 11 }).
		Return(nil)

	review, err := service.CreateReview(context.Background(), &request.CreateReviewRequest{MovieID: 3, Rating: 5, Review: " Great "})
	require.NoError(t, err)
	assert.Equal(t, int64(11), review.ID)
	assert.Equal(t, "Great", review.Review)

	_, err = service.CreateReview(context.Background(), &request.CreateReviewRequest{MovieID: 4, Rating: 5})
	assert.ErrorIs(t, err, apperrors.ErrReferential)

	_, err = service.CreateReview(context.Background(), &request.CreateReviewRequest{MovieID: 3, Rating: 9})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	reviewRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestGetBranches(t *testing.T) {
	branchRepo := new(mocks.MockBranchRepo)
	service := usecase.NewBranchService(&repository.Repository{Branch: branchRepo}, zap.NewNop())

	branchRepo.On("FindAll", mock.Anything).Return([]*entity.Branch{{ID: 1, Name: "Downtown"}, {ID: 2, Name: "Uptown"}}, nil)

	branches, err := service.GetBranches(context.Background())

	require.NoError(t, err)
	assert.Len(t, branches.Branches, 2)
}

func TestStatusWithoutDatabase(t *testing.T) {
	config := &utils.Config{App: utils.AppConfig{Name: "ABC Cinemas", Version: "1.0.0"}}
	service := usecase.NewStatusService(&repository.Repository{}, config)

	banner := service.Banner()
	assert.Equal(t, "ABC Cinemas API is running", banner.Message)
	assert.Equal(t, "1.0.0", banner.Version)
	assert.Equal(t, "healthy", banner.Status)

	status := service.Status(context.Background())
	assert.Equal(t, "online", status.API)
	assert.Equal(t, "connected", status.Database)
	assert.False(t, status.Timestamp.IsZero())
}
