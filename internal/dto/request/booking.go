package request

import (
	"strings"

	"github.com/shopspring/decimal"
)

type BookingSeatRequest struct {
	Row        string           `json:"row" validate:"required,max=5"`
	Seat       int              `json:"seat" validate:"required,min=1"`
	TicketType string           `json:"ticket_type" validate:"required,max=30"`
	Price      *decimal.Decimal `json:"price" validate:"required,gte=0"`
}

type CreateBookingRequest struct {
	UserID        int64                `json:"user_id" validate:"required,min=1"`
	MovieID       int64                `json:"movie_id" validate:"required,min=1"`
	Branch        string               `json:"branch" validate:"required,max=100"`
	Hall          string               `json:"hall" validate:"required,max=50"`
	ShowTime      string               `json:"show_time" validate:"required"`
	ShowDate      string               `json:"show_date" validate:"required,datetime=2006-01-02"`
	TotalPrice    *decimal.Decimal     `json:"total_price" validate:"required,gte=0"`
	PaymentMethod string               `json:"payment_method" validate:"required,max=50"`
	Seats         []BookingSeatRequest `json:"seats" validate:"required,min=1,dive"`
}

// UpdateSeatRequest omits ticket type and price to fall back to the configured defaults.
type UpdateSeatRequest struct {
	SeatRow    string           `json:"seat_row" validate:"required,max=5"`
	SeatNumber int              `json:"seat_number" validate:"required,min=1"`
	TicketType *string          `json:"ticket_type,omitempty" validate:"omitempty,max=30"`
	Price      *decimal.Decimal `json:"price,omitempty" validate:"omitempty,gte=0"`
}

type UpdateBookingSeatsRequest struct {
	Seats []UpdateSeatRequest `json:"seats" validate:"required,min=1,dive"`
}

type BlockedSeatsQuery struct {
	Branch   string `json:"branch" validate:"required"`
	Hall     string `json:"hall" validate:"required"`
	ShowDate string `json:"show_date" validate:"required,datetime=2006-01-02"`
	ShowTime string `json:"show_time" validate:"required"`
}

type BookingShowtimesQuery struct {
	Movie  string `json:"movie" validate:"required"`
	Branch string `json:"branch" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
}

type BookingListQuery struct {
	PaginatedRequest
	Branch *string
	Movie  *string
	Date   *string `validate:"omitempty,datetime=2006-01-02"`
}

// Normalize trims the text fields and upper-cases seat rows. Call it before validation
// so a value of only spaces counts as missing.
func (r *CreateBookingRequest) Normalize() {
	r.Branch = strings.TrimSpace(r.Branch)
	r.Hall = strings.TrimSpace(r.Hall)
	r.ShowTime = strings.TrimSpace(r.ShowTime)
	r.ShowDate = strings.TrimSpace(r.ShowDate)
	r.PaymentMethod = strings.TrimSpace(r.PaymentMethod)
	for i := range r.Seats {
		r.Seats[i].Row = seatRow(r.Seats[i].Row)
		r.Seats[i].TicketType = strings.TrimSpace(r.Seats[i].TicketType)
	}
}

func (r *UpdateBookingSeatsRequest) Normalize() {
	for i := range r.Seats {
		seat := &r.Seats[i]
		seat.SeatRow = seatRow(seat.SeatRow)
		if seat.TicketType != nil {
			ticketType := strings.TrimSpace(*seat.TicketType)
			seat.TicketType = &ticketType
		}
	}
}

func (q *BlockedSeatsQuery) Normalize() {
	q.Branch = strings.TrimSpace(q.Branch)
	q.Hall = strings.TrimSpace(q.Hall)
	q.ShowDate = strings.TrimSpace(q.ShowDate)
	q.ShowTime = strings.TrimSpace(q.ShowTime)
}

func (q *BookingShowtimesQuery) Normalize() {
	q.Movie = strings.TrimSpace(q.Movie)
	q.Branch = strings.TrimSpace(q.Branch)
	q.Date = strings.TrimSpace(q.Date)
}

func seatRow(row string) string {
	return strings.ToUpper(strings.TrimSpace(row))
}
