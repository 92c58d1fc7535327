package adaptor_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"abc-cinemas/internal/adaptor"
	"abc-cinemas/internal/dto/request"
	"abc-cinemas/internal/dto/response"
	"abc-cinemas/internal/mocks"
	"abc-cinemas/pkg/apperrors"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

const createBody = `{
	"user_id": 1,
	"movie_id": 2,
	"branch": "Downtown",
	"hall": "Hall 1",
	"show_time": "18:30",
	"show_date": "2024-05-01",
	"total_price": 20,
	"payment_method": "card",
	"seats": [
		{"row": "A", "seat": 1, "ticket_type": "Standard", "price": 10},
		{"row": "A", "seat": 2, "ticket_type": "Standard", "price": 10}
	]
}`

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

type BookingHandlerTestSuite struct {
	suite.Suite
	service *mocks.MockBookingService
	router  *chi.Mux
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.service = new(mocks.MockBookingService)
	h := adaptor.NewBookingHandler(s.service, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/blocked-seats", h.GetBlockedSeats)
	r.Get("/api/booking-showtimes", h.GetBookingShowtimes)
	r.Get("/api/users/bookings/{id}", h.GetUserBookings)
	r.Route("/api/bookings", func(r chi.Router) {
		r.Get("/", h.GetBookings)
		r.Post("/", h.CreateBooking)
		r.Get("/{id}", h.GetBookingByID)
		r.Put("/{id}", h.UpdateBooking)
		r.Delete("/{id}", h.CancelBooking)
	})
	s.router = r
}

func (s *BookingHandlerTestSuite) do(method, target, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	var env envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	created := &response.BookingCreatedResponse{
		BookingID: 1001,
		Seats: []response.SeatResponse{
			{Row: "A", Seat: 1, TicketType: "Standard", Price: decimal.NewFromInt(10)},
			{Row: "A", Seat: 2, TicketType: "Standard", Price: decimal.NewFromInt(10)},
		},
	}
	s.service.On("CreateBooking", mock.Anything, mock.MatchedBy(func(req *request.CreateBookingRequest) bool {
		return req.UserID == 1 && len(req.Seats) == 2 && req.TotalPrice.Equal(decimal.NewFromInt(20))
	})).Return(created, nil)

	rec, env := s.do(http.MethodPost, "/api/bookings", createBody)

	s.Equal(http.StatusCreated, rec.Code)
	s.True(env.Status)

	var data response.BookingCreatedResponse
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal(int64(1001), data.BookingID)
	s.Len(data.Seats, 2)
}

func (s *BookingHandlerTestSuite) TestCreateBookingRejectedBeforeService() {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"user_id": `},
		{name: "missing seats", body: strings.Replace(createBody, `"seats"`, `"ignored"`, 1)},
		{name: "missing total price", body: strings.Replace(createBody, `"total_price": 20,`, ``, 1)},
		{name: "bad show date", body: strings.Replace(createBody, `2024-05-01`, `01-05-2024`, 1)},
		{name: "blank branch", body: strings.Replace(createBody, `"Downtown"`, `"   "`, 1)},
		{name: "blank payment method", body: strings.Replace(createBody, `"card"`, `"  "`, 1)},
		{name: "blank seat row", body: strings.Replace(createBody, `"row": "A", "seat": 1`, `"row": "  ", "seat": 1`, 1)},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec, env := s.do(http.MethodPost, "/api/bookings", tt.body)

			s.Equal(http.StatusBadRequest, rec.Code)
			s.False(env.Status)
		})
	}
	s.service.AssertNotCalled(s.T(), "CreateBooking", mock.Anything, mock.Anything)
}

func (s *BookingHandlerTestSuite) TestCreateBookingErrorMapping() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "duplicate seats", err: fmt.Errorf("%w: seats: duplicate seats A1", apperrors.ErrValidation), wantStatus: http.StatusBadRequest},
		{name: "unknown user", err: fmt.Errorf("user 9: %w", apperrors.ErrReferential), wantStatus: http.StatusUnprocessableEntity},
		{name: "storage down", err: fmt.Errorf("create booking: %w", apperrors.ErrStorage), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.service.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rec, env := s.do(http.MethodPost, "/api/bookings", createBody)

			s.Equal(tt.wantStatus, rec.Code)
			s.False(env.Status)
		})
	}
}

func (s *BookingHandlerTestSuite) TestCreateBookingSeatConflictListsSeats() {
	s.service.On("CreateBooking", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("create booking: %w", &apperrors.SeatConflictError{Seats: []string{"A2"}}))

	rec, env := s.do(http.MethodPost, "/api/bookings", createBody)

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(apperrors.ErrSeatConflict.Error(), env.Message)

	var errs struct {
		Seats []string `json:"seats"`
	}
	s.Require().NoError(json.Unmarshal(env.Errors, &errs))
	s.Equal([]string{"A2"}, errs.Seats)
}

func (s *BookingHandlerTestSuite) TestUpdateBooking() {
	s.service.On("UpdateBookingSeats", mock.Anything, int64(1001), mock.MatchedBy(func(req *request.UpdateBookingSeatsRequest) bool {
		return len(req.Seats) == 1 && req.Seats[0].TicketType == nil && req.Seats[0].Price == nil
	})).Return(&response.BookingResponse{BookingID: 1001}, nil)

	rec, env := s.do(http.MethodPut, "/api/bookings/1001", `{"seats":[{"seat_row":"B","seat_number":3}]}`)

	s.Equal(http.StatusOK, rec.Code)
	s.True(env.Status)
}

func (s *BookingHandlerTestSuite) TestUpdateBookingConflict() {
	s.service.On("UpdateBookingSeats", mock.Anything, int64(1001), mock.Anything).
		Return(nil, &apperrors.SeatConflictError{Seats: []string{"A1", "A2"}})

	rec, env := s.do(http.MethodPut, "/api/bookings/1001", `{"seats":[{"seat_row":"A","seat_number":1},{"seat_row":"A","seat_number":2}]}`)

	s.Equal(http.StatusConflict, rec.Code)
	s.JSONEq(`{"seats":["A1","A2"]}`, string(env.Errors))
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	s.service.On("CancelBooking", mock.Anything, int64(1001)).Return(nil).Once()
	s.service.On("CancelBooking", mock.Anything, int64(1001)).
		Return(fmt.Errorf("booking 1001: %w", apperrors.ErrNotFound)).Once()

	rec, _ := s.do(http.MethodDelete, "/api/bookings/1001", "")
	s.Equal(http.StatusOK, rec.Code)

	rec, env := s.do(http.MethodDelete, "/api/bookings/1001", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.False(env.Status)
}

func (s *BookingHandlerTestSuite) TestInvalidPathID() {
	for _, target := range []string{"/api/bookings/abc", "/api/bookings/0", "/api/bookings/-4"} {
		rec, env := s.do(http.MethodGet, target, "")
		s.Equal(http.StatusBadRequest, rec.Code, target)
		s.Equal("Invalid booking ID", env.Message)
	}

	rec, env := s.do(http.MethodGet, "/api/users/bookings/x", "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Invalid user ID", env.Message)
}

func (s *BookingHandlerTestSuite) TestGetBlockedSeats() {
	query := request.BlockedSeatsQuery{Branch: "Downtown", Hall: "Hall 1", ShowDate: "2024-05-01", ShowTime: "18:30"}
	s.service.On("GetBlockedSeats", mock.Anything, query).Return(&response.BlockedSeatsResponse{
		BlockedSeats: []response.BlockedSeat{{SeatRow: "A", SeatNumber: 2}},
	}, nil)

	rec, env := s.do(http.MethodGet, "/api/blocked-seats?branch=Downtown&hall=Hall+1&show_date=2024-05-01&show_time=18:30", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"blockedSeats":[{"seat_row":"A","seat_number":2}]}`, string(env.Data))
}

func (s *BookingHandlerTestSuite) TestGetBlockedSeatsMissingParameter() {
	rec, env := s.do(http.MethodGet, "/api/blocked-seats?branch=Downtown&show_date=2024-05-01&show_time=18:30", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(string(env.Errors), "hall")
	s.service.AssertNotCalled(s.T(), "GetBlockedSeats", mock.Anything, mock.Anything)
}

func (s *BookingHandlerTestSuite) TestGetBlockedSeatsBlankParameter() {
	rec, env := s.do(http.MethodGet, "/api/blocked-seats?branch=%20%20&hall=Hall+1&show_date=2024-05-01&show_time=18:30", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(string(env.Errors), "branch")
	s.service.AssertNotCalled(s.T(), "GetBlockedSeats", mock.Anything, mock.Anything)
}

func (s *BookingHandlerTestSuite) TestGetBlockedSeatsTrimsParameters() {
	query := request.BlockedSeatsQuery{Branch: "Downtown", Hall: "Hall 1", ShowDate: "2024-05-01", ShowTime: "18:30"}
	s.service.On("GetBlockedSeats", mock.Anything, query).
		Return(&response.BlockedSeatsResponse{BlockedSeats: []response.BlockedSeat{}}, nil)

	rec, _ := s.do(http.MethodGet, "/api/blocked-seats?branch=+Downtown+&hall=Hall+1+&show_date=2024-05-01&show_time=18:30", "")

	s.Equal(http.StatusOK, rec.Code)
	s.service.AssertExpectations(s.T())
}

func (s *BookingHandlerTestSuite) TestGetBookingShowtimesNotFound() {
	s.service.On("GetBookingShowtimes", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("showtimes: %w", apperrors.ErrNotFound))

	rec, _ := s.do(http.MethodGet, "/api/booking-showtimes?movie=Dune&branch=Downtown&date=2024-05-01", "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *BookingHandlerTestSuite) TestGetBookingsPassesFilters() {
	s.service.On("ListBookings", mock.Anything, mock.MatchedBy(func(q *request.BookingListQuery) bool {
		return q.Page == 2 && q.PerPage == 5 &&
			q.Branch != nil && *q.Branch == "Downtown" &&
			q.Movie == nil && q.Date == nil
	})).Return(response.NewPaginatedResponse([]response.BookingSummaryResponse{}, 2, 5, 0), nil)

	rec, env := s.do(http.MethodGet, "/api/bookings?page=2&per_page=5&branch=Downtown", "")

	s.Equal(http.StatusOK, rec.Code)
	s.True(env.Status)
	s.service.AssertExpectations(s.T())
}
