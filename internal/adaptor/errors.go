package adaptor

import (
	"errors"
	"net/http"

	"abc-cinemas/pkg/apperrors"
	"abc-cinemas/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// handleServiceError maps a service error onto the response envelope.
// Client errors log at Warn, everything else is a 500 logged at Error.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	fields := []zap.Field{zap.Error(err), zap.String("operation", operation)}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		log.Warn(operation+" validation failed", fields...)
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", fields...)
		utils.ResponseUnauthorized(w, apperrors.ErrInvalidCredentials.Error())

	case errors.Is(err, apperrors.ErrNotFound):
		log.Warn(operation+" failed - not found", fields...)
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, apperrors.ErrSeatConflict):
		log.Warn(operation+" failed - seat conflict", fields...)
		utils.ResponseConflict(w, apperrors.ErrSeatConflict.Error(), map[string]any{
			"seats": conflictLabels(err),
		})

	case errors.Is(err, apperrors.ErrAlreadyExists):
		log.Warn(operation+" failed - already exists", fields...)
		utils.ResponseConflict(w, err.Error(), nil)

	case errors.Is(err, apperrors.ErrReferential):
		log.Warn(operation+" failed - referential", fields...)
		utils.ResponseUnprocessable(w, err.Error())

	default:
		log.Error(operation+" failed", fields...)
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func conflictLabels(err error) []string {
	if seats := apperrors.ConflictingSeats(err); seats != nil {
		return seats
	}
	return []string{}
}

// pathID reads a positive integer URL parameter, answering 400 when it is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name, label string) (int64, bool) {
	id, ok := utils.ParseID(chi.URLParam(r, name))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid "+label+" ID", nil)
		return 0, false
	}
	return id, true
}
