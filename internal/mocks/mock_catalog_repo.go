package mocks

import (
	"context"
	"time"

	"abc-cinemas/internal/data/entity"
	"abc-cinemas/internal/data/repository"

	"github.com/stretchr/testify/mock"
)

type MockMovieRepo struct {
	mock.Mock
	repository.MovieRepository
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepo) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMovieRepo) FindAll(ctx context.Context, limit, offset int, genre *string) ([]*entity.Movie, error) {
	args := m.Called(ctx, limit, offset, genre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepo) CountAll(ctx context.Context, genre *string) (int64, error) {
	args := m.Called(ctx, genre)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovieRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMovieRepo) FindIDByTitle(ctx context.Context, title string) (int64, error) {
	args := m.Called(ctx, title)
	return args.Get(0).(int64), args.Error(1)
}

type MockShowtimeRepo struct {
	mock.Mock
	repository.ShowtimeRepository
}

func (m *MockShowtimeRepo) Create(ctx context.Context, showtime *entity.Showtime) error {
	args := m.Called(ctx, showtime)
	return args.Error(0)
}

func (m *MockShowtimeRepo) FindByID(ctx context.Context, id int64) (*entity.Showtime, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Showtime), args.Error(1)
}

func (m *MockShowtimeRepo) FindAll(ctx context.Context, filter entity.ShowtimeFilter) ([]*entity.Showtime, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Showtime), args.Error(1)
}

func (m *MockShowtimeRepo) Update(ctx context.Context, showtime *entity.Showtime) error {
	args := m.Called(ctx, showtime)
	return args.Error(0)
}

func (m *MockShowtimeRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShowtimeRepo) FindSlots(ctx context.Context, movieID int64, branch string, showDate time.Time) ([]*entity.ShowtimeSlot, error) {
	args := m.Called(ctx, movieID, branch, showDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ShowtimeSlot), args.Error(1)
}

func (m *MockShowtimeRepo) Exists(ctx context.Context, key entity.ShowingKey) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type MockReviewRepo struct {
	mock.Mock
	repository.ReviewRepository
}

func (m *MockReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepo) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepo) FindAll(ctx context.Context, movieID *int64) ([]*entity.Review, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepo) GetMovieReviewStats(ctx context.Context, movieID int64) (entity.MovieReviewStats, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).(entity.MovieReviewStats), args.Error(1)
}

type MockBranchRepo struct {
	mock.Mock
	repository.BranchRepository
}

func (m *MockBranchRepo) FindAll(ctx context.Context) ([]*entity.Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Branch), args.Error(1)
}
