package response

import (
	"strings"
	"time"

	"abc-cinemas/internal/data/entity"

	"github.com/shopspring/decimal"
)

type SeatResponse struct {
	Row        string          `json:"row"`
	Seat       int             `json:"seat"`
	TicketType string          `json:"ticket_type"`
	Price      decimal.Decimal `json:"price"`
}

type BookingCreatedResponse struct {
	BookingID int64          `json:"booking_id"`
	Seats     []SeatResponse `json:"seats"`
}

type BookingResponse struct {
	BookingID     int64           `json:"booking_id"`
	UserID        int64           `json:"user_id"`
	MovieID       int64           `json:"movie_id"`
	MovieTitle    string          `json:"movie_title,omitempty"`
	Branch        string          `json:"branch"`
	Hall          string          `json:"hall"`
	ShowDate      string          `json:"show_date"`
	ShowTime      string          `json:"show_time"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	PaymentMethod string          `json:"payment_method"`
	Seats         []SeatResponse  `json:"seats"`
	CreatedAt     time.Time       `json:"created_at"`
}

type BookingSummaryResponse struct {
	BookingID    int64    `json:"booking_id"`
	MovieID      int64    `json:"movie_id"`
	MovieTitle   string   `json:"movie_title"`
	Branch       string   `json:"branch"`
	Hall         string   `json:"hall"`
	ShowDate     string   `json:"show_date"`
	ShowTime     string   `json:"show_time"`
	Seats        []string `json:"seats"`
	CustomerName string   `json:"customer_name"`
}

type BlockedSeat struct {
	SeatRow    string `json:"seat_row"`
	SeatNumber int    `json:"seat_number"`
}

type BlockedSeatsResponse struct {
	BlockedSeats []BlockedSeat `json:"blockedSeats"`
}

type ShowtimeSlotResponse struct {
	Hall     string `json:"hall"`
	ShowTime string `json:"show_time"`
}

type BookingShowtimesResponse struct {
	ShowTimes []ShowtimeSlotResponse `json:"showTimes"`
}

// Helper converters
func SeatToResponse(seat *entity.BookingSeat) SeatResponse {
	return SeatResponse{
		Row:        seat.SeatRow,
		Seat:       seat.SeatNumber,
		TicketType: seat.TicketType,
		Price:      seat.Price,
	}
}

func SeatsToResponse(seats []*entity.BookingSeat) []SeatResponse {
	out := make([]SeatResponse, len(seats))
	for i, seat := range seats {
		out[i] = SeatToResponse(seat)
	}
	return out
}

func BookingToResponse(booking *entity.Booking, movieTitle string, seats []*entity.BookingSeat) BookingResponse {
	return BookingResponse{
		BookingID:     booking.ID,
		UserID:        booking.UserID,
		MovieID:       booking.MovieID,
		MovieTitle:    movieTitle,
		Branch:        booking.Branch,
		Hall:          booking.Hall,
		ShowDate:      booking.ShowDate.Format(entity.DateLayout),
		ShowTime:      booking.ShowTime,
		TotalPrice:    booking.TotalPrice,
		PaymentMethod: booking.PaymentMethod,
		Seats:         SeatsToResponse(seats),
		CreatedAt:     booking.CreatedAt,
	}
}

func BookingDetailToResponse(detail *entity.BookingDetail) BookingResponse {
	return BookingToResponse(&detail.Booking, detail.MovieTitle, detail.Seats)
}

func BookingSummaryToResponse(summary *entity.BookingSummary) BookingSummaryResponse {
	seats := []string{}
	if summary.Seats != "" {
		seats = strings.Split(summary.Seats, ", ")
	}

	return BookingSummaryResponse{
		BookingID:    summary.BookingID,
		MovieID:      summary.MovieID,
		MovieTitle:   summary.MovieTitle,
		Branch:       summary.Branch,
		Hall:         summary.Hall,
		ShowDate:     summary.ShowDate.Format(entity.DateLayout),
		ShowTime:     summary.ShowTime,
		Seats:        seats,
		CustomerName: summary.CustomerName,
	}
}

func BlockedSeatsToResponse(set entity.SeatSet) BlockedSeatsResponse {
	sorted := set.Sorted()
	seats := make([]BlockedSeat, len(sorted))
	for i, seat := range sorted {
		seats[i] = BlockedSeat{SeatRow: seat.Row, SeatNumber: seat.Number}
	}
	return BlockedSeatsResponse{BlockedSeats: seats}
}

func SlotsToResponse(slots []*entity.ShowtimeSlot) BookingShowtimesResponse {
	out := make([]ShowtimeSlotResponse, len(slots))
	for i, slot := range slots {
		out[i] = ShowtimeSlotResponse{Hall: slot.Hall, ShowTime: slot.ShowTime}
	}
	return BookingShowtimesResponse{ShowTimes: out}
}
