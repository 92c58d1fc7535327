package entity

import "github.com/shopspring/decimal"

// BookingSeat is one seat assignment owned by a booking.
type BookingSeat struct {
	ID         int64           `db:"detail_id"`
	BookingID  int64           `db:"booking_id"`
	SeatRow    string          `db:"seat_row"`
	SeatNumber int             `db:"seat_number"`
	TicketType string          `db:"ticket_type"`
	Price      decimal.Decimal `db:"price"`
}

func (s *BookingSeat) Ref() SeatRef {
	return SeatRef{Row: s.SeatRow, Number: s.SeatNumber}
}

// SeatRefs extracts the positions of seats.
func SeatRefs(seats []*BookingSeat) []SeatRef {
	refs := make([]SeatRef, len(seats))
	for i, seat := range seats {
		refs[i] = seat.Ref()
	}
	return refs
}
