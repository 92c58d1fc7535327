package mocks

import (
	"context"

	"abc-cinemas/internal/dto/request"
	"abc-cinemas/internal/dto/response"
	"abc-cinemas/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockBookingService struct {
	mock.Mock
	usecase.BookingService
}

func (m *MockBookingService) GetBlockedSeats(ctx context.Context, query request.BlockedSeatsQuery) (*response.BlockedSeatsResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BlockedSeatsResponse), args.Error(1)
}

func (m *MockBookingService) GetBookingShowtimes(ctx context.Context, query request.BookingShowtimesQuery) (*response.BookingShowtimesResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingShowtimesResponse), args.Error(1)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingCreatedResponse), args.Error(1)
}

func (m *MockBookingService) UpdateBookingSeats(ctx context.Context, bookingID int64, req *request.UpdateBookingSeatsRequest) (*response.BookingResponse, error) {
	args := m.Called(ctx, bookingID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) CancelBooking(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockBookingService) GetBookingByID(ctx context.Context, bookingID int64) (*response.BookingResponse, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) GetUserBookings(ctx context.Context, userID int64) ([]response.BookingResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) ListBookings(ctx context.Context, query *request.BookingListQuery) (*response.PaginatedResponse[response.BookingSummaryResponse], error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.BookingSummaryResponse]), args.Error(1)
}

type MockMovieService struct {
	mock.Mock
	usecase.MovieService
}

func (m *MockMovieService) GetMovieByID(ctx context.Context, movieID int64) (*response.MovieDetailResponse, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.MovieDetailResponse), args.Error(1)
}

func (m *MockMovieService) DeleteMovie(ctx context.Context, movieID int64) error {
	args := m.Called(ctx, movieID)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
	usecase.UserService
}

func (m *MockUserService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

type MockStatusService struct {
	mock.Mock
	usecase.StatusService
}

func (m *MockStatusService) Banner() usecase.Banner {
	args := m.Called()
	return args.Get(0).(usecase.Banner)
}

func (m *MockStatusService) Status(ctx context.Context) usecase.Status {
	args := m.Called(ctx)
	return args.Get(0).(usecase.Status)
}
