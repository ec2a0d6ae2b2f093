package response

import (
	"errors"
	"net/http"

	"github.com/expensehub/expensehub-backend-go/internal/domain/account"
	"github.com/expensehub/expensehub-backend-go/internal/domain/request"
	"github.com/expensehub/expensehub-backend-go/internal/pkg/token"
	"github.com/expensehub/expensehub-backend-go/internal/pkg/validator"
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
	// Account domain errors
	case errors.Is(err, account.ErrInvalidCredentials):
		BadRequest(w, "Invalid credentials", nil)
	case errors.Is(err, account.ErrUsernameTaken):
		BadRequest(w, "Validation failed", map[string]string{"username": "username already taken"})
	case errors.Is(err, account.ErrEmailTaken):
		BadRequest(w, "Validation failed", map[string]string{"email": "email already taken"})

	// Request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Not found")
	case errors.Is(err, request.ErrOwnerNotFound):
		BadRequest(w, "Validation failed", map[string]string{"owner": "owner does not exist"})

	// Shared-secret parse errors
	case errors.Is(err, token.ErrInvalidHeader),
		errors.Is(err, token.ErrBadFormat),
		errors.Is(err, token.ErrInvalidSecret):
		Unauthorized(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
