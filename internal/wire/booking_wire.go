package wire

import (
	"abc-cinemas/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// Seat ledger lookups
	r.Get("/api/booking-showtimes", bookingHandler.GetBookingShowtimes)
	r.Get("/api/blocked-seats", bookingHandler.GetBlockedSeats)

	r.Route("/api/bookings", func(r chi.Router) {
		r.Get("/", bookingHandler.GetBookings)
		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/{id}", bookingHandler.GetBookingByID)
		r.Put("/{id}", bookingHandler.UpdateBooking)
		r.Delete("/{id}", bookingHandler.CancelBooking)
	})
}
