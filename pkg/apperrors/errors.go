package apperrors

import (
	"errors"
	"strings"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrReferential        = errors.New("referenced record does not exist")
	ErrSeatConflict       = errors.New("seat already booked")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrStorage            = errors.New("storage failure")
)

// SeatConflictError lists the seats that are already taken for a showing.
type SeatConflictError struct {
	Seats []string
}

func (e *SeatConflictError) Error() string {
	if len(e.Seats) == 0 {
		return ErrSeatConflict.Error()
	}
	return ErrSeatConflict.Error() + ": " + strings.Join(e.Seats, ", ")
}

func (e *SeatConflictError) Is(target error) bool {
	return target == ErrSeatConflict
}

// ConflictingSeats returns the seat labels carried by err, if any.
func ConflictingSeats(err error) []string {
	var conflict *SeatConflictError
	if errors.As(err, &conflict) {
		return conflict.Seats
	}
	return nil
}
