package repository

import (
	"errors"
	"fmt"

	"abc-cinemas/pkg/apperrors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// seatUniqueConstraint guards against selling a seat twice for one showing.
const seatUniqueConstraint = "booking_details_showing_seat_key"

// mapError translates driver errors into the application taxonomy.
// Anything unrecognised is reported as a storage failure.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			if pgErr.ConstraintName == seatUniqueConstraint {
				return fmt.Errorf("%s: %w", op, &apperrors.SeatConflictError{})
			}
			return fmt.Errorf("%s: %w (%s)", op, apperrors.ErrAlreadyExists, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%s: %w (%s)", op, apperrors.ErrReferential, pgErr.ConstraintName)
		case pgerrcode.CheckViolation, pgerrcode.InvalidTextRepresentation, pgerrcode.NumericValueOutOfRange:
			return fmt.Errorf("%s: %w: %s", op, apperrors.ErrValidation, pgErr.Message)
		}
	}

	return fmt.Errorf("%s: %w: %w", op, apperrors.ErrStorage, err)
}

// wrapTxError keeps already classified errors and classifies the rest.
func wrapTxError(op string, err error) error {
	if err == nil {
		return nil
	}

	for _, target := range []error{
		apperrors.ErrNotFound,
		apperrors.ErrSeatConflict,
		apperrors.ErrReferential,
		apperrors.ErrAlreadyExists,
		apperrors.ErrValidation,
		apperrors.ErrStorage,
	} {
		if errors.Is(err, target) {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return mapError(op, err)
}

// isClientError reports errors caused by the request rather than the store.
func isClientError(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrSeatConflict) ||
		errors.Is(err, apperrors.ErrReferential) ||
		errors.Is(err, apperrors.ErrAlreadyExists) ||
		errors.Is(err, apperrors.ErrValidation)
}
