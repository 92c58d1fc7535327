package repository

import (
	"context"

	"abc-cinemas/internal/data/entity"
	"abc-cinemas/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingSeatRepository is the seat ledger: which seats are sold for a showing.
type BookingSeatRepository interface {
	FindBlockedSeats(ctx context.Context, key entity.ShowingKey) (entity.SeatSet, error)
	FindByBookingID(ctx context.Context, bookingID int64) ([]*entity.BookingSeat, error)
}

type bookingSeatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingSeatRepository(db database.PgxIface, log *zap.Logger) BookingSeatRepository {
	return &bookingSeatRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_seat")),
	}
}

func (r *bookingSeatRepository) FindBlockedSeats(ctx context.Context, key entity.ShowingKey) (entity.SeatSet, error) {
	seats, err := blockedSeats(ctx, r.db, key, 0)
	if err != nil {
		r.log.Error("Failed to find blocked seats",
			zap.Error(err),
			zap.String("showing", key.String()),
		)
		return nil, err
	}

	r.log.Debug("Blocked seats found",
		zap.String("showing", key.String()),
		zap.Int("count", len(seats)),
	)

	return seats, nil
}

func (r *bookingSeatRepository) FindByBookingID(ctx context.Context, bookingID int64) ([]*entity.BookingSeat, error) {
	seats, err := seatsByBookingIDs(ctx, r.db, []int64{bookingID})
	if err != nil {
		r.log.Error("Failed to find booking seats",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
		)
		return nil, err
	}
	return seats[bookingID], nil
}

// blockedSeats reads the sold seats of a showing through q, which may be an open transaction.
// Seats owned by excludeBookingID are left out; pass 0 to include every booking.
func blockedSeats(ctx context.Context, q database.Querier, key entity.ShowingKey, excludeBookingID int64) (entity.SeatSet, error) {
	query := `
		SELECT bd.seat_row, bd.seat_number
		FROM booking_details bd
		INNER JOIN bookings b ON b.booking_id = bd.booking_id
		WHERE b.branch = $1 AND b.hall = $2 AND b.show_date = $3 AND b.show_time = $4
		  AND b.booking_id <> $5
	`

	rows, err := q.Query(ctx, query, key.Branch, key.Hall, key.ShowDate, key.ShowTime, excludeBookingID)
	if err != nil {
		return nil, mapError("query blocked seats", err)
	}
	defer rows.Close()

	seats := entity.NewSeatSet()
	for rows.Next() {
		var seat entity.SeatRef
		if err := rows.Scan(&seat.Row, &seat.Number); err != nil {
			return nil, mapError("scan blocked seat", err)
		}
		seats.Add(seat)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError("iterate blocked seats", err)
	}

	return seats, nil
}

// seatsByBookingIDs groups seat rows by owning booking.
func seatsByBookingIDs(ctx context.Context, q database.Querier, bookingIDs []int64) (map[int64][]*entity.BookingSeat, error) {
	query := `
		SELECT detail_id, booking_id, seat_row, seat_number, ticket_type, price
		FROM booking_details
		WHERE booking_id = ANY($1)
		ORDER BY booking_id, seat_row, seat_number
	`

	rows, err := q.Query(ctx, query, bookingIDs)
	if err != nil {
		return nil, mapError("query booking seats", err)
	}
	defer rows.Close()

	seats := make(map[int64][]*entity.BookingSeat, len(bookingIDs))
	for rows.Next() {
		var bs entity.BookingSeat
		err := rows.Scan(
			&bs.ID,
			&bs.BookingID,
			&bs.SeatRow,
			&bs.SeatNumber,
			&bs.TicketType,
			&bs.Price,
		)
		if err != nil {
			return nil, mapError("scan booking seat", err)
		}
		seats[bs.BookingID] = append(seats[bs.BookingID], &bs)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError("iterate booking seats", err)
	}

	return seats, nil
}

// insertSeats writes the seats of booking inside tx. The showing key is copied
// from the header so the storage unique constraint sees it.
func insertSeats(ctx context.Context, tx pgx.Tx, booking *entity.Booking, seats []*entity.BookingSeat) error {
	query := `
		INSERT INTO booking_details (booking_id, branch, hall, show_date, show_time,
		                             seat_row, seat_number, ticket_type, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING detail_id
	`

	batch := &pgx.Batch{}
	for _, seat := range seats {
		seat.BookingID = booking.ID
		batch.Queue(query,
			booking.ID,
			booking.Branch,
			booking.Hall,
			booking.ShowDate,
			booking.ShowTime,
			seat.SeatRow,
			seat.SeatNumber,
			seat.TicketType,
			seat.Price,
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&seat.ID)
		})
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapError("insert booking seats", err)
	}

	return nil
}

func deleteSeats(ctx context.Context, q database.Querier, bookingID int64) error {
	_, err := q.Exec(ctx, `DELETE FROM booking_details WHERE booking_id = $1`, bookingID)
	if err != nil {
		return mapError("delete booking seats", err)
	}
	return nil
}
