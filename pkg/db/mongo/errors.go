package mongo

import (
	"errors"
	"fmt"
	"strings"

	apperrors "mocms/pkg/errors"
)

var (
	// ErrNotFound is returned when no document matches the requested ID.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidID is returned when an ID is not a 24-hex ObjectID.
	ErrInvalidID = errors.New("invalid document ID format")

	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("duplicate key")
)

// AppError translates a repository error into the error returned to
// clients. resource is the display name ("Article"), action the verb used
// in the internal error message ("update"). Errors that already are
// AppErrors pass through.
func AppError(err error, resource, id, action string) *apperrors.AppError {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, ErrNotFound):
		return apperrors.NotFoundWithID(resource, id)
	case errors.Is(err, ErrInvalidID):
		return apperrors.InvalidInput(fmt.Sprintf("Invalid %s ID format", strings.ToLower(resource)))
	case errors.Is(err, ErrDuplicate):
		return apperrors.Conflict(fmt.Sprintf("%s already exists", resource))
	default:
		return apperrors.Internal(fmt.Sprintf("Failed to %s %s", action, strings.ToLower(resource)), err)
	}
}
