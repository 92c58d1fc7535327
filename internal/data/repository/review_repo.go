package repository

import (
	"context"
	"fmt"

	"abc-cinemas/internal/data/entity"
	"abc-cinemas/pkg/apperrors"
	"abc-cinemas/pkg/database"

	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	FindAll(ctx context.Context, movieID *int64) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id int64) error

	// Business queries
	GetMovieReviewStats(ctx context.Context, movieID int64) (entity.MovieReviewStats, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO rating_reviews (movie_id, user_id, rating, review)
		VALUES ($1, $2, $3, $4)
		RETURNING review_id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		review.MovieID,
		review.UserID,
		review.Rating,
		review.Review,
	).Scan(&review.ID, &review.CreatedAt)

	if err != nil {
		err = mapError("create review", err)
		if isClientError(err) {
			r.log.Warn("Review not created", zap.Error(err), zap.Int64("movie_id", review.MovieID))
			return err
		}
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("movie_id", review.MovieID),
		)
		return err
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	query := `
		SELECT review_id, movie_id, user_id, rating, review, created_at
		FROM rating_reviews
		WHERE review_id = $1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.MovieID,
		&review.UserID,
		&review.Rating,
		&review.Review,
		&review.CreatedAt,
	)
	if err != nil {
		err = mapError(fmt.Sprintf("find review %d", id), err)
		if !isClientError(err) {
			r.log.Error("Failed to find review by ID", zap.Error(err), zap.Int64("review_id", id))
		}
		return nil, err
	}

	return &review, nil
}

func (r *reviewRepository) FindAll(ctx context.Context, movieID *int64) ([]*entity.Review, error) {
	query := `
		SELECT review_id, movie_id, user_id, rating, review, created_at
		FROM rating_reviews
	`
	args := []any{}

	if movieID != nil {
		query += " WHERE movie_id = $1"
		args = append(args, *movieID)
	}
	query += " ORDER BY created_at DESC, review_id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find reviews", zap.Error(err))
		return nil, mapError("find reviews", err)
	}
	defer rows.Close()

	reviews := []*entity.Review{}
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.MovieID,
			&review.UserID,
			&review.Rating,
			&review.Review,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, mapError("scan review", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError("iterate reviews", err)
	}

	return reviews, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE rating_reviews
		SET rating = $2, review = $3
		WHERE review_id = $1
		RETURNING movie_id, user_id, created_at
	`

	err := r.db.QueryRow(ctx, query, review.ID, review.Rating, review.Review).
		Scan(&review.MovieID, &review.UserID, &review.CreatedAt)
	if err != nil {
		err = mapError(fmt.Sprintf("update review %d", review.ID), err)
		if !isClientError(err) {
			r.log.Error("Failed to update review", zap.Error(err), zap.Int64("review_id", review.ID))
		}
		return err
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM rating_reviews WHERE review_id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete review", zap.Error(err), zap.Int64("review_id", id))
		return mapError(fmt.Sprintf("delete review %d", id), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %d: %w", id, apperrors.ErrNotFound)
	}

	return nil
}

func (r *reviewRepository) GetMovieReviewStats(ctx context.Context, movieID int64) (entity.MovieReviewStats, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0)::float8, COUNT(*)
		FROM rating_reviews
		WHERE movie_id = $1
	`

	var stats entity.MovieReviewStats
	err := r.db.QueryRow(ctx, query, movieID).Scan(&stats.AverageRating, &stats.ReviewCount)
	if err != nil {
		r.log.Error("Failed to get movie review stats", zap.Error(err), zap.Int64("movie_id", movieID))
		return stats, mapError("movie review stats", err)
	}

	return stats, nil
}
