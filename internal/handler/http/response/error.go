package response

import (
	"errors"
	"net/http"

	"github.com/campushr/letters-backend-go/internal/domain/auth"
	"github.com/campushr/letters-backend-go/internal/domain/letter"
	"github.com/campushr/letters-backend-go/internal/domain/template"
	"github.com/campushr/letters-backend-go/internal/domain/user"
	"github.com/campushr/letters-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameOrEmailExists):
		Conflict(w, "Username or email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Letter domain errors
	case errors.Is(err, letter.ErrLetterNotFound):
		NotFound(w, "Letter not found")
	case errors.Is(err, letter.ErrRenderFailed):
		InternalServerError(w, "Failed to render letter document")

	// Template domain errors
	case errors.Is(err, template.ErrTemplateNotFound):
		NotFound(w, "Template not found")
	case errors.Is(err, template.ErrDeleteNotSupported):
		BadRequest(w, "Template deletion is not supported", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
