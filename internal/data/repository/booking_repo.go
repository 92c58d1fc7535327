package repository

import (
	"context"
	"fmt"
	"strings"

	"abc-cinemas/internal/data/entity"
	"abc-cinemas/pkg/apperrors"
	"abc-cinemas/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Transactional writes
	CreateWithSeats(ctx context.Context, booking *entity.Booking, seats []*entity.BookingSeat) error
	ReplaceSeats(ctx context.Context, bookingID int64, seats []*entity.BookingSeat) (*entity.Booking, error)
	Delete(ctx context.Context, bookingID int64) error

	// Read models
	FindByID(ctx context.Context, bookingID int64) (*entity.BookingDetail, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.BookingDetail, error)
	FindAll(ctx context.Context, filter entity.BookingFilter, limit, offset int) ([]*entity.BookingSummary, error)
	CountAll(ctx context.Context, filter entity.BookingFilter) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// CreateWithSeats checks the seat ledger and writes the header and seats in one
// transaction. A seat sold concurrently surfaces as a unique violation on insert,
// which rolls the whole booking back.
func (r *bookingRepository) CreateWithSeats(ctx context.Context, booking *entity.Booking, seats []*entity.BookingSeat) error {
	err := database.RunInTx(ctx, r.db, func(tx pgx.Tx) error {
		blocked, err := blockedSeats(ctx, tx, booking.Showing(), 0)
		if err != nil {
			return err
		}

		if taken := blocked.Conflicts(entity.SeatRefs(seats)); len(taken) > 0 {
			return &apperrors.SeatConflictError{Seats: entity.SeatLabels(taken)}
		}

		query := `
			INSERT INTO bookings (user_id, movie_id, branch, hall, show_date, show_time,
			                      total_price, payment_method)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING booking_id, created_at
		`

		err = tx.QueryRow(ctx, query,
			booking.UserID,
			booking.MovieID,
			booking.Branch,
			booking.Hall,
			booking.ShowDate,
			booking.ShowTime,
			booking.TotalPrice,
			booking.PaymentMethod,
		).Scan(&booking.ID, &booking.CreatedAt)
		if err != nil {
			return mapError("insert booking", err)
		}

		return insertSeats(ctx, tx, booking, seats)
	})

	if err != nil {
		booking.ID = 0
		err = wrapTxError("create booking", err)
		r.logFailure("Failed to create booking", err,
			zap.Int64("user_id", booking.UserID),
			zap.String("showing", booking.Showing().String()),
			zap.Int("seat_count", len(seats)),
		)
		return err
	}

	return nil
}

// ReplaceSeats swaps the full seat list of a booking. Seats held by other
// bookings of the same showing are rejected and nothing changes.
func (r *bookingRepository) ReplaceSeats(ctx context.Context, bookingID int64, seats []*entity.BookingSeat) (*entity.Booking, error) {
	var booking *entity.Booking

	err := database.RunInTx(ctx, r.db, func(tx pgx.Tx) error {
		header, err := findHeader(ctx, tx, bookingID, true)
		if err != nil {
			return err
		}
		booking = header

		blocked, err := blockedSeats(ctx, tx, booking.Showing(), booking.ID)
		if err != nil {
			return err
		}

		if taken := blocked.Conflicts(entity.SeatRefs(seats)); len(taken) > 0 {
			return &apperrors.SeatConflictError{Seats: entity.SeatLabels(taken)}
		}

		if err := deleteSeats(ctx, tx, booking.ID); err != nil {
			return err
		}

		return insertSeats(ctx, tx, booking, seats)
	})

	if err != nil {
		err = wrapTxError("replace booking seats", err)
		r.logFailure("Failed to replace booking seats", err,
			zap.Int64("booking_id", bookingID),
			zap.Int("seat_count", len(seats)),
		)
		return nil, err
	}

	return booking, nil
}

// Delete removes the seats and then the header of a booking in one transaction.
func (r *bookingRepository) Delete(ctx context.Context, bookingID int64) error {
	err := database.RunInTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := deleteSeats(ctx, tx, bookingID); err != nil {
			return err
		}

		result, err := tx.Exec(ctx, `DELETE FROM bookings WHERE booking_id = $1`, bookingID)
		if err != nil {
			return mapError("delete booking", err)
		}

		if result.RowsAffected() == 0 {
			return fmt.Errorf("booking %d: %w", bookingID, apperrors.ErrNotFound)
		}

		return nil
	})

	if err != nil {
		err = wrapTxError("cancel booking", err)
		r.logFailure("Failed to delete booking", err, zap.Int64("booking_id", bookingID))
		return err
	}

	r.log.Info("Booking deleted", zap.Int64("booking_id", bookingID))
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, bookingID int64) (*entity.BookingDetail, error) {
	query := bookingDetailSelect + ` WHERE b.booking_id = $1`

	var detail entity.BookingDetail
	if err := scanBookingDetail(r.db.QueryRow(ctx, query, bookingID), &detail); err != nil {
		err = mapError(fmt.Sprintf("find booking %d", bookingID), err)
		r.logFailure("Failed to find booking by ID", err, zap.Int64("booking_id", bookingID))
		return nil, err
	}

	seats, err := seatsByBookingIDs(ctx, r.db, []int64{bookingID})
	if err != nil {
		r.log.Error("Failed to find booking seats", zap.Error(err), zap.Int64("booking_id", bookingID))
		return nil, err
	}
	detail.Seats = seats[bookingID]

	return &detail, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.BookingDetail, error) {
	query := bookingDetailSelect + ` WHERE b.user_id = $1 ORDER BY b.created_at DESC, b.booking_id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		err = mapError("find user bookings", err)
		r.log.Error("Failed to find bookings by user", zap.Error(err), zap.Int64("user_id", userID))
		return nil, err
	}
	defer rows.Close()

	details := []*entity.BookingDetail{}
	ids := []int64{}
	for rows.Next() {
		var detail entity.BookingDetail
		if err := scanBookingDetail(rows, &detail); err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, mapError("scan booking", err)
		}
		details = append(details, &detail)
		ids = append(ids, detail.ID)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, mapError("iterate bookings", err)
	}

	if len(ids) == 0 {
		return details, nil
	}

	seats, err := seatsByBookingIDs(ctx, r.db, ids)
	if err != nil {
		r.log.Error("Failed to find seats for user bookings", zap.Error(err), zap.Int64("user_id", userID))
		return nil, err
	}
	for _, detail := range details {
		detail.Seats = seats[detail.ID]
	}

	return details, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, filter entity.BookingFilter, limit, offset int) ([]*entity.BookingSummary, error) {
	where, args := bookingFilterClause(filter)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT b.booking_id, b.movie_id, m.title, b.branch, b.hall, b.show_date, b.show_time,
		       string_agg('R' || bd.seat_row || 'S' || bd.seat_number, ', '
		                  ORDER BY bd.seat_row, bd.seat_number) AS seats,
		       u.full_name
		FROM bookings b
		INNER JOIN booking_details bd ON bd.booking_id = b.booking_id
		INNER JOIN movies m ON m.id = b.movie_id
		INNER JOIN users u ON u.user_id = b.user_id
	`)
	queryBuilder.WriteString(where)
	queryBuilder.WriteString(" GROUP BY b.booking_id, m.id, u.user_id")
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY b.show_date DESC, b.show_time DESC, b.booking_id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		err = mapError("list bookings", err)
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Stringp("branch", filter.Branch),
			zap.Stringp("movie", filter.Movie),
		)
		return nil, err
	}
	defer rows.Close()

	summaries := []*entity.BookingSummary{}
	for rows.Next() {
		var s entity.BookingSummary
		err := rows.Scan(
			&s.BookingID,
			&s.MovieID,
			&s.MovieTitle,
			&s.Branch,
			&s.Hall,
			&s.ShowDate,
			&s.ShowTime,
			&s.Seats,
			&s.CustomerName,
		)
		if err != nil {
			r.log.Error("Failed to scan booking summary row", zap.Error(err))
			return nil, mapError("scan booking summary", err)
		}
		summaries = append(summaries, &s)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, mapError("iterate booking summaries", err)
	}

	r.log.Debug("Bookings listed",
		zap.Int("count", len(summaries)),
		zap.Int("offset", offset),
		zap.Int("limit", limit),
	)

	return summaries, nil
}

func (r *bookingRepository) CountAll(ctx context.Context, filter entity.BookingFilter) (int64, error) {
	where, args := bookingFilterClause(filter)

	query := `
		SELECT COUNT(DISTINCT b.booking_id)
		FROM bookings b
		INNER JOIN booking_details bd ON bd.booking_id = b.booking_id
		INNER JOIN movies m ON m.id = b.movie_id
		INNER JOIN users u ON u.user_id = b.user_id
	` + where

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		err = mapError("count bookings", err)
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, err
	}

	return total, nil
}

const bookingDetailSelect = `
	SELECT b.booking_id, b.user_id, b.movie_id, b.branch, b.hall, b.show_date, b.show_time,
	       b.total_price, b.payment_method, b.created_at, m.title
	FROM bookings b
	INNER JOIN movies m ON m.id = b.movie_id
`

func scanBookingDetail(row pgx.Row, detail *entity.BookingDetail) error {
	return row.Scan(
		&detail.ID,
		&detail.UserID,
		&detail.MovieID,
		&detail.Branch,
		&detail.Hall,
		&detail.ShowDate,
		&detail.ShowTime,
		&detail.TotalPrice,
		&detail.PaymentMethod,
		&detail.CreatedAt,
		&detail.MovieTitle,
	)
}

// findHeader loads a booking header, optionally locking it for the rest of the transaction.
func findHeader(ctx context.Context, q database.Querier, bookingID int64, forUpdate bool) (*entity.Booking, error) {
	query := `
		SELECT booking_id, user_id, movie_id, branch, hall, show_date, show_time,
		       total_price, payment_method, created_at
		FROM bookings
		WHERE booking_id = $1
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var b entity.Booking
	err := q.QueryRow(ctx, query, bookingID).Scan(
		&b.ID,
		&b.UserID,
		&b.MovieID,
		&b.Branch,
		&b.Hall,
		&b.ShowDate,
		&b.ShowTime,
		&b.TotalPrice,
		&b.PaymentMethod,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, mapError(fmt.Sprintf("find booking %d", bookingID), err)
	}

	return &b, nil
}

func bookingFilterClause(filter entity.BookingFilter) (string, []any) {
	var conditions []string
	args := []any{}

	if filter.Branch != nil {
		args = append(args, *filter.Branch)
		conditions = append(conditions, fmt.Sprintf("b.branch = $%d", len(args)))
	}
	if filter.Movie != nil {
		args = append(args, "%"+*filter.Movie+"%")
		conditions = append(conditions, fmt.Sprintf("m.title ILIKE $%d", len(args)))
	}
	if filter.ShowDate != nil {
		args = append(args, *filter.ShowDate)
		conditions = append(conditions, fmt.Sprintf("b.show_date = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// logFailure logs client-caused failures at Warn and storage failures at Error.
func (r *bookingRepository) logFailure(msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if isClientError(err) {
		r.log.Warn(msg, fields...)
		return
	}
	r.log.Error(msg, fields...)
}
