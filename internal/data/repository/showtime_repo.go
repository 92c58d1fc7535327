package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"abc-cinemas/internal/data/entity"
	"abc-cinemas/pkg/apperrors"
	"abc-cinemas/pkg/database"

	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id int64) (*entity.Showtime, error)
	FindAll(ctx context.Context, filter entity.ShowtimeFilter) ([]*entity.Showtime, error)
	Update(ctx context.Context, showtime *entity.Showtime) error
	Delete(ctx context.Context, id int64) error

	// Booking lookups
	FindSlots(ctx context.Context, movieID int64, branch string, showDate time.Time) ([]*entity.ShowtimeSlot, error)
	Exists(ctx context.Context, key entity.ShowingKey) (bool, error)
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (movie_id, branch, hall, show_date, show_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		showtime.MovieID,
		showtime.Branch,
		showtime.Hall,
		showtime.ShowDate,
		showtime.ShowTime,
	).Scan(&showtime.ID, &showtime.CreatedAt)

	if err != nil {
		err = mapError("create showtime", err)
		if isClientError(err) {
			r.log.Warn("Showtime not created", zap.Error(err), zap.String("showing", showtime.Showing().String()))
			return err
		}
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.Int64("movie_id", showtime.MovieID),
			zap.String("showing", showtime.Showing().String()),
		)
		return err
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id int64) (*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, branch, hall, show_date, show_time, created_at
		FROM showtimes
		WHERE id = $1
	`

	var s entity.Showtime
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.MovieID,
		&s.Branch,
		&s.Hall,
		&s.ShowDate,
		&s.ShowTime,
		&s.CreatedAt,
	)
	if err != nil {
		err = mapError(fmt.Sprintf("find showtime %d", id), err)
		if !isClientError(err) {
			r.log.Error("Failed to find showtime by ID", zap.Error(err), zap.Int64("showtime_id", id))
		}
		return nil, err
	}

	return &s, nil
}

func (r *showtimeRepository) FindAll(ctx context.Context, filter entity.ShowtimeFilter) ([]*entity.Showtime, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, movie_id, branch, hall, show_date, show_time, created_at
		FROM showtimes
		WHERE 1=1
	`)

	args := []any{}
	if filter.Branch != nil {
		args = append(args, *filter.Branch)
		queryBuilder.WriteString(fmt.Sprintf(" AND branch = $%d", len(args)))
	}
	if filter.MovieID != nil {
		args = append(args, *filter.MovieID)
		queryBuilder.WriteString(fmt.Sprintf(" AND movie_id = $%d", len(args)))
	}
	if filter.ShowDate != nil {
		args = append(args, *filter.ShowDate)
		queryBuilder.WriteString(fmt.Sprintf(" AND show_date = $%d", len(args)))
	}
	queryBuilder.WriteString(" ORDER BY show_date, show_time, branch, hall")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find showtimes", zap.Error(err))
		return nil, mapError("find showtimes", err)
	}
	defer rows.Close()

	showtimes := []*entity.Showtime{}
	for rows.Next() {
		var s entity.Showtime
		err := rows.Scan(
			&s.ID,
			&s.MovieID,
			&s.Branch,
			&s.Hall,
			&s.ShowDate,
			&s.ShowTime,
			&s.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, mapError("scan showtime", err)
		}
		showtimes = append(showtimes, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError("iterate showtimes", err)
	}

	return showtimes, nil
}

func (r *showtimeRepository) Update(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		UPDATE showtimes
		SET movie_id = $2, branch = $3, hall = $4, show_date = $5, show_time = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.Branch,
		showtime.Hall,
		showtime.ShowDate,
		showtime.ShowTime,
	)
	if err != nil {
		err = mapError(fmt.Sprintf("update showtime %d", showtime.ID), err)
		if !isClientError(err) {
			r.log.Error("Failed to update showtime", zap.Error(err), zap.Int64("showtime_id", showtime.ID))
		}
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %d: %w", showtime.ID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *showtimeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete showtime", zap.Error(err), zap.Int64("showtime_id", id))
		return mapError(fmt.Sprintf("delete showtime %d", id), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %d: %w", id, apperrors.ErrNotFound)
	}

	return nil
}

func (r *showtimeRepository) FindSlots(ctx context.Context, movieID int64, branch string, showDate time.Time) ([]*entity.ShowtimeSlot, error) {
	query := `
		SELECT hall, show_time
		FROM showtimes
		WHERE movie_id = $1 AND branch = $2 AND show_date = $3
		ORDER BY show_time, hall
	`

	rows, err := r.db.Query(ctx, query, movieID, branch, showDate)
	if err != nil {
		r.log.Error("Failed to find showtime slots",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
			zap.String("branch", branch),
		)
		return nil, mapError("find showtime slots", err)
	}
	defer rows.Close()

	slots := []*entity.ShowtimeSlot{}
	for rows.Next() {
		var slot entity.ShowtimeSlot
		if err := rows.Scan(&slot.Hall, &slot.ShowTime); err != nil {
			return nil, mapError("scan showtime slot", err)
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError("iterate showtime slots", err)
	}

	return slots, nil
}

func (r *showtimeRepository) Exists(ctx context.Context, key entity.ShowingKey) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM showtimes
			WHERE branch = $1 AND hall = $2 AND show_date = $3 AND show_time = $4
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, key.Branch, key.Hall, key.ShowDate, key.ShowTime).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check showtime existence", zap.Error(err), zap.String("showing", key.String()))
		return false, mapError("check showtime exists", err)
	}
	return exists, nil
}
