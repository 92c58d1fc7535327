package repository

import (
	"abc-cinemas/internal/data/entity"
	"abc-cinemas/pkg/apperrors"
	"abc-cinemas/pkg/database"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type MovieRepository interface {
	// CRUD Movie
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error
	FindAll(ctx context.Context, limit, offset int, genre *string) ([]*entity.Movie, error)
	CountAll(ctx context.Context, genre *string) (int64, error)

	// Lookups used by bookings
	Exists(ctx context.Context, id int64) (bool, error)
	FindIDByTitle(ctx context.Context, title string) (int64, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, description, genre, duration)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Description,
		movie.Genre,
		movie.Duration,
	).Scan(&movie.ID, &movie.CreatedAt, &movie.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return mapError("create movie", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT id, title, description, genre, duration, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genre,
		&movie.Duration,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err != nil {
		err = mapError(fmt.Sprintf("find movie %d", id), err)
		if isClientError(err) {
			return nil, err
		}
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, err
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, limit, offset int, genre *string) ([]*entity.Movie, error) {
	// Build query with optional filter
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, title, description, genre, duration, created_at, updated_at
		FROM movies
	`)

	args := []any{}
	argCount := 1

	if genre != nil && *genre != "" {
		queryBuilder.WriteString(fmt.Sprintf(" WHERE genre ILIKE $%d", argCount))
		args = append(args, *genre)
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY title, id LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all movies",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
			zap.Stringp("genre", genre),
		)
		return nil, mapError("find movies", err)
	}
	defer rows.Close()

	movies := []*entity.Movie{}
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Genre,
			&movie.Duration,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, mapError("scan movie", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, mapError("iterate movies", err)
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.Int("offset", offset),
		zap.Int("limit", limit),
	)

	return movies, nil
}

func (r *movieRepository) CountAll(ctx context.Context, genre *string) (int64, error) {
	query := `SELECT COUNT(*) FROM movies`
	args := []any{}

	if genre != nil && *genre != "" {
		query += " WHERE genre ILIKE $1"
		args = append(args, *genre)
	}

	var total int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count movies",
			zap.Error(err),
			zap.Stringp("genre", genre),
		)
		return 0, mapError("count movies", err)
	}

	return total, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, description = $3, genre = $4, duration = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.Genre,
		movie.Duration,
	).Scan(&movie.UpdatedAt)

	if err != nil {
		err = mapError(fmt.Sprintf("update movie %d", movie.ID), err)
		if !isClientError(err) {
			r.log.Error("Failed to update movie",
				zap.Error(err),
				zap.Int64("movie_id", movie.ID),
			)
		}
		return err
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		err = mapError(fmt.Sprintf("delete movie %d", id), err)
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d: %w", id, apperrors.ErrNotFound)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

func (r *movieRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM movies WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check movie existence", zap.Error(err), zap.Int64("movie_id", id))
		return false, mapError("check movie exists", err)
	}
	return exists, nil
}

func (r *movieRepository) FindIDByTitle(ctx context.Context, title string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `SELECT id FROM movies WHERE title = $1 ORDER BY id LIMIT 1`, title).Scan(&id)
	if err != nil {
		return 0, mapError(fmt.Sprintf("find movie titled %q", title), err)
	}
	return id, nil
}
