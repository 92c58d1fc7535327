package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking is a committed order for seats at one showing.
// Cancelling deletes it together with its seats.
type Booking struct {
	ID            int64           `db:"booking_id"`
	UserID        int64           `db:"user_id"`
	MovieID       int64           `db:"movie_id"`
	Branch        string          `db:"branch"`
	Hall          string          `db:"hall"`
	ShowDate      time.Time       `db:"show_date"`
	ShowTime      string          `db:"show_time"`
	TotalPrice    decimal.Decimal `db:"total_price"`
	PaymentMethod string          `db:"payment_method"`
	CreatedAt     time.Time       `db:"created_at"`
}

func (b *Booking) Showing() ShowingKey {
	return ShowingKey{Branch: b.Branch, Hall: b.Hall, ShowDate: b.ShowDate, ShowTime: b.ShowTime}
}

// BookingDetail is a booking joined with its movie title and seats.
type BookingDetail struct {
	Booking
	MovieTitle string
	Seats      []*BookingSeat
}

// BookingSummary is one row of the staff booking listing.
type BookingSummary struct {
	BookingID    int64
	MovieID      int64
	MovieTitle   string
	Branch       string
	Hall         string
	ShowDate     time.Time
	ShowTime     string
	Seats        string // R{row}S{number}, comma separated
	CustomerName string
}

// BookingFilter narrows the booking listing. Nil fields are ignored.
type BookingFilter struct {
	Branch   *string
	Movie    *string // partial, case-insensitive title match
	ShowDate *time.Time
}
