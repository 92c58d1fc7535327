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

type BookingService interface {
	// Seat ledger
	GetBlockedSeats(ctx context.Context, query request.BlockedSeatsQuery) (*response.BlockedSeatsResponse, error)
	GetBookingShowtimes(ctx context.Context, query request.BookingShowtimesQuery) (*response.BookingShowtimesResponse, error)

	// Booking workflow
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error)
	UpdateBookingSeats(ctx context.Context, bookingID int64, req *request.UpdateBookingSeatsRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID int64) error

	// Read models
	GetBookingByID(ctx context.Context, bookingID int64) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID int64) ([]response.BookingResponse, error)
	ListBookings(ctx context.Context, query *request.BookingListQuery) (*response.PaginatedResponse[response.BookingSummaryResponse], error)
}

type bookingService struct {
	repo   *repository.Repository
	config utils.BookingConfig
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		config: config.Booking,
		log:    log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBlockedSeats(ctx context.Context, query request.BlockedSeatsQuery) (*response.BlockedSeatsResponse, error) {
	query.Normalize()
	if errs := utils.ValidateStruct(query); len(errs) > 0 {
		return nil, validationError(errs)
	}

	key, err := showingKey(query.Branch, query.Hall, query.ShowDate, query.ShowTime)
	if err != nil {
		return nil, err
	}

	blocked, err := s.repo.BookingSeat.FindBlockedSeats(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get blocked seats: %w", err)
	}

	resp := response.BlockedSeatsToResponse(blocked)
	return &resp, nil
}

func (s *bookingService) GetBookingShowtimes(ctx context.Context, query request.BookingShowtimesQuery) (*response.BookingShowtimesResponse, error) {
	query.Normalize()
	if errs := utils.ValidateStruct(query); len(errs) > 0 {
		return nil, validationError(errs)
	}

	showDate, err := entity.ParseShowDate(query.Date)
	if err != nil {
		return nil, invalidField("date", "must be YYYY-MM-DD")
	}

	movieID, err := s.repo.Movie.FindIDByTitle(ctx, query.Movie)
	if err != nil {
		return nil, fmt.Errorf("movie %q: %w", query.Movie, err)
	}

	slots, err := s.repo.Showtime.FindSlots(ctx, movieID, query.Branch, showDate)
	if err != nil {
		return nil, fmt.Errorf("get booking showtimes: %w", err)
	}

	if len(slots) == 0 {
		return nil, fmt.Errorf("showtimes for %q at %s on %s: %w",
			query.Movie, query.Branch, query.Date, apperrors.ErrNotFound)
	}

	resp := response.SlotsToResponse(slots)
	return &resp, nil
}

// CreateBooking validates the request, checks the referenced movie and user and
// hands the header and seats to the repository, which writes them atomically.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	key, err := showingKey(req.Branch, req.Hall, req.ShowDate, req.ShowTime)
	if err != nil {
		return nil, err
	}

	seats := make([]*entity.BookingSeat, len(req.Seats))
	for i, seat := range req.Seats {
		ref := entity.NewSeatRef(seat.Row, seat.Seat)
		seats[i] = &entity.BookingSeat{
			SeatRow:    ref.Row,
			SeatNumber: ref.Number,
			TicketType: seat.TicketType,
			Price:      *seat.Price,
		}
	}

	if dupes := entity.DuplicateSeats(entity.SeatRefs(seats)); len(dupes) > 0 {
		return nil, invalidField("seats", "duplicate seats "+strings.Join(entity.SeatLabels(dupes), ", "))
	}

	if err := s.checkReferences(ctx, req.MovieID, req.UserID, key); err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		UserID:        req.UserID,
		MovieID:       req.MovieID,
		Branch:        key.Branch,
		Hall:          key.Hall,
		ShowDate:      key.ShowDate,
		ShowTime:      key.ShowTime,
		TotalPrice:    *req.TotalPrice,
		PaymentMethod: req.PaymentMethod,
	}

	if err := s.repo.Booking.CreateWithSeats(ctx, booking, seats); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("user_id", booking.UserID),
		zap.String("showing", key.String()),
		zap.Strings("seats", entity.SeatLabels(entity.SeatRefs(seats))),
	)

	return &response.BookingCreatedResponse{
		BookingID: booking.ID,
		Seats:     response.SeatsToResponse(seats),
	}, nil
}

func (s *bookingService) checkReferences(ctx context.Context, movieID, userID int64, key entity.ShowingKey) error {
	exists, err := s.repo.Movie.Exists(ctx, movieID)
	if err != nil {
		return fmt.Errorf("check movie: %w", err)
	}
	if !exists {
		return fmt.Errorf("movie %d: %w", movieID, apperrors.ErrReferential)
	}

	exists, err = s.repo.User.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return fmt.Errorf("user %d: %w", userID, apperrors.ErrReferential)
	}

	if !s.config.RequireShowtime {
		return nil
	}

	exists, err = s.repo.Showtime.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check showtime: %w", err)
	}
	if !exists {
		return fmt.Errorf("showtime %s: %w", key, apperrors.ErrReferential)
	}

	return nil
}

func (s *bookingService) UpdateBookingSeats(ctx context.Context, bookingID int64, req *request.UpdateBookingSeatsRequest) (*response.BookingResponse, error) {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs), zap.Int64("booking_id", bookingID))
		return nil, validationError(errs)
	}

	seats := make([]*entity.BookingSeat, len(req.Seats))
	for i, seat := range req.Seats {
		ref := entity.NewSeatRef(seat.SeatRow, seat.SeatNumber)
		bs := &entity.BookingSeat{
			SeatRow:    ref.Row,
			SeatNumber: ref.Number,
			TicketType: s.config.DefaultTicketType,
			Price:      s.config.DefaultSeatPrice,
		}
		if seat.TicketType != nil && *seat.TicketType != "" {
			bs.TicketType = *seat.TicketType
		}
		if seat.Price != nil {
			bs.Price = *seat.Price
		}
		seats[i] = bs
	}

	if dupes := entity.DuplicateSeats(entity.SeatRefs(seats)); len(dupes) > 0 {
		return nil, invalidField("seats", "duplicate seats "+strings.Join(entity.SeatLabels(dupes), ", "))
	}

	booking, err := s.repo.Booking.ReplaceSeats(ctx, bookingID, seats)
	if err != nil {
		return nil, fmt.Errorf("update booking seats: %w", err)
	}

	s.log.Info("Booking seats replaced",
		zap.Int64("booking_id", bookingID),
		zap.Strings("seats", entity.SeatLabels(entity.SeatRefs(seats))),
	)

	resp := response.BookingToResponse(booking, "", seats)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID int64) error {
	if err := s.repo.Booking.Delete(ctx, bookingID); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("Booking cancelled", zap.Int64("booking_id", bookingID))
	return nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID int64) (*response.BookingResponse, error) {
	detail, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	resp := response.BookingDetailToResponse(detail)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID int64) ([]response.BookingResponse, error) {
	details, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	bookings := make([]response.BookingResponse, len(details))
	for i, detail := range details {
		bookings[i] = response.BookingDetailToResponse(detail)
	}

	s.log.Debug("User bookings retrieved", zap.Int64("user_id", userID), zap.Int("count", len(bookings)))
	return bookings, nil
}

func (s *bookingService) ListBookings(ctx context.Context, query *request.BookingListQuery) (*response.PaginatedResponse[response.BookingSummaryResponse], error) {
	if errs := utils.ValidateStruct(query); len(errs) > 0 {
		return nil, validationError(errs)
	}

	filter := entity.BookingFilter{Branch: query.Branch, Movie: query.Movie}
	if query.Date != nil {
		date, err := entity.ParseShowDate(*query.Date)
		if err != nil {
			return nil, invalidField("date", "must be YYYY-MM-DD")
		}
		filter.ShowDate = &date
	}

	summaries, err := s.repo.Booking.FindAll(ctx, filter, query.Limit(), query.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	items := make([]response.BookingSummaryResponse, len(summaries))
	for i, summary := range summaries {
		items[i] = response.BookingSummaryToResponse(summary)
	}

	return response.NewPaginatedResponse(items, query.Page, query.Limit(), total), nil
}

// showingKey trims the textual parts and parses the date and time of a showing.
func showingKey(branch, hall, showDate, showTime string) (entity.ShowingKey, error) {
	date, err := entity.ParseShowDate(showDate)
	if err != nil {
		return entity.ShowingKey{}, invalidField("show_date", "must be YYYY-MM-DD")
	}

	normalized, err := entity.NormalizeShowTime(showTime)
	if err != nil {
		return entity.ShowingKey{}, invalidField("show_time", "must be HH:MM")
	}

	return entity.ShowingKey{
		Branch:   strings.TrimSpace(branch),
		Hall:     strings.TrimSpace(hall),
		ShowDate: date,
		ShowTime: normalized,
	}, nil
}
