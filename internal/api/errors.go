package api

import (
	"errors"
	"net/http"

	"github.com/Bauumgarten/usuario/internal/api/shared"
	"github.com/Bauumgarten/usuario/internal/domain"
	"github.com/Bauumgarten/usuario/internal/service/auth"
	"github.com/Bauumgarten/usuario/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes. The core never deals in status codes; this is the only place the
// translation happens.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrEmptyPassword):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type, preventing internal details from leaking.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrAddressNotFound):
		return "Address not found"

	case errors.Is(err, store.ErrPhoneNotFound):
		return "Phone not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"

	case errors.Is(err, store.ErrPhoneNumberExists):
		return "Phone number already registered"

	case errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrEmptyPassword):
		return "Invalid user data: " + err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// respondServiceError writes the response for an error bubbled up from the
// service layer, using the central status and message mapping.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
