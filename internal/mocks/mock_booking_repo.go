package mocks

import (
	"context"

	"abc-cinemas/internal/data/entity"
	"abc-cinemas/internal/data/repository"

	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
	repository.BookingRepository
}

func (m *MockBookingRepo) CreateWithSeats(ctx context.Context, booking *entity.Booking, seats []*entity.BookingSeat) error {
	args := m.Called(ctx, booking, seats)
	return args.Error(0)
}

func (m *MockBookingRepo) ReplaceSeats(ctx context.Context, bookingID int64, seats []*entity.BookingSeat) (*entity.Booking, error) {
	args := m.Called(ctx, bookingID, seats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) Delete(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockBookingRepo) FindByID(ctx context.Context, bookingID int64) (*entity.BookingDetail, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BookingDetail), args.Error(1)
}

func (m *MockBookingRepo) FindByUserID(ctx context.Context, userID int64) ([]*entity.BookingDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BookingDetail), args.Error(1)
}

func (m *MockBookingRepo) FindAll(ctx context.Context, filter entity.BookingFilter, limit, offset int) ([]*entity.BookingSummary, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BookingSummary), args.Error(1)
}

func (m *MockBookingRepo) CountAll(ctx context.Context, filter entity.BookingFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockBookingSeatRepo struct {
	mock.Mock
	repository.BookingSeatRepository
}

func (m *MockBookingSeatRepo) FindBlockedSeats(ctx context.Context, key entity.ShowingKey) (entity.SeatSet, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(entity.SeatSet), args.Error(1)
}

func (m *MockBookingSeatRepo) FindByBookingID(ctx context.Context, bookingID int64) ([]*entity.BookingSeat, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BookingSeat), args.Error(1)
}
