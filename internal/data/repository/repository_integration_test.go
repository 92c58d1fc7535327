package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"abc-cinemas/internal/data/entity"
	"abc-cinemas/internal/data/repository"
	"abc-cinemas/pkg/apperrors"
	"abc-cinemas/pkg/database"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap"
)

const (
	dbName      = "abcinemas"
	dbUser      = "test_user"
	dbPassword  = "test_password"
	dbImageName = "postgres:16-alpine"
)

type RepositorySuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
	repo      *repository.Repository

	userID  int64
	otherID int64
	movieID int64
	showing entity.ShowingKey
}

func TestRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration tests in short mode")
	}
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx, dbImageName,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Require().NoError(database.Migrate(connStr, zap.NewNop()))

	pool, err := pgxpool.New(ctx, connStr)
	s.Require().NoError(err)
	s.pool = pool
	s.repo = repository.NewRepository(database.NewDB(pool), zap.NewNop())
}

func (s *RepositorySuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if err := testcontainers.TerminateContainer(s.container); err != nil {
		s.T().Logf("failed to terminate postgres container: %v", err)
	}
}

func (s *RepositorySuite) SetupTest() {
	ctx := context.Background()

	_, err := s.pool.Exec(ctx, `
		TRUNCATE booking_details, bookings, rating_reviews, showtimes, users, movies RESTART IDENTITY CASCADE
	`)
	s.Require().NoError(err)

	movie := &entity.Movie{Title: "Dune", Genre: "Sci-Fi", Duration: 155}
	s.Require().NoError(s.repo.Movie.Create(ctx, movie))
	s.movieID = movie.ID

	s.userID = s.createUser("alice@example.com")
	s.otherID = s.createUser("bob@example.com")

	s.showing = entity.ShowingKey{
		Branch:   "Downtown",
		Hall:     "H1",
		ShowDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		ShowTime: "18:00",
	}
}

func (s *RepositorySuite) createUser(email string) int64 {
	user := &entity.User{
		FullName:     "Test " + email,
		Email:        email,
		PasswordHash: "x",
		Role:         entity.RoleUser,
		DateOfBirth:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		PhoneNumber:  "555-0100",
	}
	s.Require().NoError(s.repo.User.Create(context.Background(), user))
	return user.ID
}

func (s *RepositorySuite) newBooking(userID int64) *entity.Booking {
	return &entity.Booking{
		UserID:        userID,
		MovieID:       s.movieID,
		Branch:        s.showing.Branch,
		Hall:          s.showing.Hall,
		ShowDate:      s.showing.ShowDate,
		ShowTime:      s.showing.ShowTime,
		TotalPrice:    decimal.RequireFromString("20.00"),
		PaymentMethod: "card",
	}
}

func seats(refs ...entity.SeatRef) []*entity.BookingSeat {
	out := make([]*entity.BookingSeat, len(refs))
	for i, ref := range refs {
		out[i] = &entity.BookingSeat{
			SeatRow:    ref.Row,
			SeatNumber: ref.Number,
			TicketType: "Standard",
			Price:      decimal.RequireFromString("10.00"),
		}
	}
	return out
}

func (s *RepositorySuite) countBookings() int {
	var n int
	s.Require().NoError(s.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM bookings`).Scan(&n))
	return n
}

func (s *RepositorySuite) blocked() []entity.SeatRef {
	set, err := s.repo.BookingSeat.FindBlockedSeats(context.Background(), s.showing)
	s.Require().NoError(err)
	return set.Sorted()
}

func (s *RepositorySuite) TestBookingLifecycle() {
	ctx := context.Background()

	s.Empty(s.blocked())

	first := s.newBooking(s.userID)
	s.Require().NoError(s.repo.Booking.CreateWithSeats(ctx, first, seats(
		entity.SeatRef{Row: "A", Number: 1},
		entity.SeatRef{Row: "A", Number: 2},
	)))
	s.Equal(int64(1001), first.ID)

	second := s.newBooking(s.otherID)
	err := s.repo.Booking.CreateWithSeats(ctx, second, seats(entity.SeatRef{Row: "A", Number: 2}))
	s.Require().ErrorIs(err, apperrors.ErrSeatConflict)
	s.Equal([]string{"A2"}, apperrors.ConflictingSeats(err))
	s.Zero(second.ID)
	s.Equal(1, s.countBookings())

	want := []entity.SeatRef{{Row: "A", Number: 1}, {Row: "A", Number: 2}}
	if diff := cmp.Diff(want, s.blocked()); diff != "" {
		s.Failf("blocked seats mismatch", "(-want +got):\n%s", diff)
	}

	s.Require().NoError(s.repo.Booking.Delete(ctx, first.ID))
	s.Empty(s.blocked())
	s.Zero(s.countBookings())

	err = s.repo.Booking.Delete(ctx, first.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositorySuite) TestOtherShowingsDoNotBlock() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Booking.CreateWithSeats(ctx, s.newBooking(s.userID), seats(entity.SeatRef{Row: "A", Number: 1})))

	later := s.newBooking(s.otherID)
	later.ShowTime = "21:00"
	s.Require().NoError(s.repo.Booking.CreateWithSeats(ctx, later, seats(entity.SeatRef{Row: "A", Number: 1})))

	s.Len(s.blocked(), 1)
}

func (s *RepositorySuite) TestConcurrentBookingsSellSeatOnce() {
	ctx := context.Background()
	const attempts = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
		others    []error
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			err := s.repo.Booking.CreateWithSeats(ctx, s.newBooking(userID), seats(
				entity.SeatRef{Row: "C", Number: 7},
			))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, apperrors.ErrSeatConflict):
				conflicts++
			default:
				others = append(others, err)
			}
		}(s.userID)
	}
	wg.Wait()

	s.Empty(others)
	s.Equal(1, succeeded)
	s.Equal(attempts-1, conflicts)
	s.Equal(1, s.countBookings())
}

func (s *RepositorySuite) TestUnknownUserIsReferential() {
	err := s.repo.Booking.CreateWithSeats(context.Background(), s.newBooking(99999), seats(entity.SeatRef{Row: "A", Number: 1}))
	s.ErrorIs(err, apperrors.ErrReferential)
	s.Zero(s.countBookings())
}

func (s *RepositorySuite) TestReplaceSeats() {
	ctx := context.Background()

	mine := s.newBooking(s.userID)
	s.Require().NoError(s.repo.Booking.CreateWithSeats(ctx, mine, seats(
		entity.SeatRef{Row: "A", Number: 1},
		entity.SeatRef{Row: "A", Number: 2},
	)))
	theirs := s.newBooking(s.otherID)
	s.Require().NoError(s.repo.Booking.CreateWithSeats(ctx, theirs, seats(entity.SeatRef{Row: "B", Number: 1})))

	// keeping one of its own seats is allowed
	_, err := s.repo.Booking.ReplaceSeats(ctx, mine.ID, seats(
		entity.SeatRef{Row: "A", Number: 2},
		entity.SeatRef{Row: "A", Number: 3},
	))
	s.Require().NoError(err)

	_, err = s.repo.Booking.ReplaceSeats(ctx, mine.ID, seats(entity.SeatRef{Row: "B", Number: 1}))
	s.Require().ErrorIs(err, apperrors.ErrSeatConflict)

	detail, err := s.repo.Booking.FindByID(ctx, mine.ID)
	s.Require().NoError(err)
	s.Equal([]entity.SeatRef{{Row: "A", Number: 2}, {Row: "A", Number: 3}}, entity.SeatRefs(detail.Seats))
	s.Equal("Dune", detail.MovieTitle)

	_, err = s.repo.Booking.ReplaceSeats(ctx, 424242, seats(entity.SeatRef{Row: "Z", Number: 1}))
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositorySuite) TestReadModels() {
	ctx := context.Background()

	first := s.newBooking(s.userID)
	s.Require().NoError(s.repo.Booking.CreateWithSeats(ctx, first, seats(
		entity.SeatRef{Row: "B", Number: 2},
		entity.SeatRef{Row: "A", Number: 10},
	)))
	second := s.newBooking(s.userID)
	second.Hall = "H2"
	s.Require().NoError(s.repo.Booking.CreateWithSeats(ctx, second, seats(entity.SeatRef{Row: "A", Number: 1})))

	mine, err := s.repo.Booking.FindByUserID(ctx, s.userID)
	s.Require().NoError(err)
	s.Len(mine, 2)

	movie := "du"
	filter := entity.BookingFilter{Movie: &movie, Branch: &s.showing.Branch}
	summaries, err := s.repo.Booking.FindAll(ctx, filter, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(summaries, 2)
	s.Equal("RAS10, RBS2", summaries[0].Seats)
	s.Equal("Test alice@example.com", summaries[0].CustomerName)

	total, err := s.repo.Booking.CountAll(ctx, filter)
	s.Require().NoError(err)
	s.Equal(int64(2), total)

	_, err = s.repo.Booking.FindByID(ctx, 1)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositorySuite) TestShowtimes() {
	ctx := context.Background()

	showtime := &entity.Showtime{
		MovieID:  s.movieID,
		Branch:   s.showing.Branch,
		Hall:     s.showing.Hall,
		ShowDate: s.showing.ShowDate,
		ShowTime: s.showing.ShowTime,
	}
	s.Require().NoError(s.repo.Showtime.Create(ctx, showtime))

	dup := *showtime
	s.ErrorIs(s.repo.Showtime.Create(ctx, &dup), apperrors.ErrAlreadyExists)

	orphan := *showtime
	orphan.MovieID = 99999
	orphan.Hall = "H9"
	s.ErrorIs(s.repo.Showtime.Create(ctx, &orphan), apperrors.ErrReferential)

	exists, err := s.repo.Showtime.Exists(ctx, s.showing)
	s.Require().NoError(err)
	s.True(exists)

	slots, err := s.repo.Showtime.FindSlots(ctx, s.movieID, "Downtown", s.showing.ShowDate)
	s.Require().NoError(err)
	s.Equal([]*entity.ShowtimeSlot{{Hall: "H1", ShowTime: "18:00"}}, slots)
}

func (s *RepositorySuite) TestReviewsAndStats() {
	ctx := context.Background()

	for _, rating := range []int{4, 5} {
		s.Require().NoError(s.repo.Review.Create(ctx, &entity.Review{MovieID: s.movieID, UserID: &s.userID, Rating: rating}))
	}

	s.ErrorIs(s.repo.Review.Create(ctx, &entity.Review{MovieID: s.movieID, Rating: 9}), apperrors.ErrValidation)

	stats, err := s.repo.Review.GetMovieReviewStats(ctx, s.movieID)
	s.Require().NoError(err)
	s.InDelta(4.5, stats.AverageRating, 0.001)
	s.Equal(int64(2), stats.ReviewCount)
}

func (s *RepositorySuite) TestUsers() {
	ctx := context.Background()

	user, err := s.repo.User.FindByEmail(ctx, "ALICE@example.com")
	s.Require().NoError(err)
	s.Equal(s.userID, user.ID)

	dup := &entity.User{
		FullName: "Dup", Email: "alice@example.com", PasswordHash: "x", Role: entity.RoleUser,
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), PhoneNumber: "1",
	}
	s.ErrorIs(s.repo.User.Create(ctx, dup), apperrors.ErrAlreadyExists)

	branches, err := s.repo.Branch.FindAll(ctx)
	s.Require().NoError(err)
	s.Len(branches, 3)

	s.NoError(s.repo.Ping(ctx))
}
