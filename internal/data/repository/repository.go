package repository

import (
	"context"

	"abc-cinemas/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Branch      BranchRepository
	Movie       MovieRepository
	User        UserRepository
	Showtime    ShowtimeRepository
	Booking     BookingRepository
	BookingSeat BookingSeatRepository
	Review      ReviewRepository

	db database.PgxIface
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Branch:      NewBranchRepository(db, log),
		Movie:       NewMovieRepository(db, log),
		User:        NewUserRepository(db, log),
		Showtime:    NewShowtimeRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		BookingSeat: NewBookingSeatRepository(db, log),
		Review:      NewReviewRepository(db, log),
		db:          db,
	}
}

// Ping reports whether the database answers.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.Ping(ctx)
}
