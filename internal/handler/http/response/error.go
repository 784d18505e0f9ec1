package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/collections-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/collections-backend-go/internal/domain/collection"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())

	// Collection domain errors
	case errors.Is(err, collection.ErrCollectionNotFound):
		NotFound(w, "Collection not found")
	case errors.Is(err, collection.ErrLikedCollectionNotFound),
		errors.Is(err, collection.ErrMembershipUpdateFailed):
		InternalServerError(w, "An error occurred: "+err.Error())

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
