package response

import (
	"errors"
	"net/http"

	"github.com/newera-construction/siteledger-backend-go/internal/domain/attendance"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/auth"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/project"
	"github.com/newera-construction/siteledger-backend-go/internal/domain/worker"
	"github.com/newera-construction/siteledger-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrWorkerInactive):
		Conflict(w, "Worker is inactive")
	case errors.Is(err, worker.ErrAdvanceNotFound):
		NotFound(w, "Advance payment not found")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectCodeExists):
		Conflict(w, "Project code already exists")
	case errors.Is(err, project.ErrAssignmentNotFound):
		NotFound(w, "Open assignment not found")
	case errors.Is(err, project.ErrAssignmentExists):
		Conflict(w, "Worker already has an open assignment on this project")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnknownWorker):
		NotFound(w, "Worker not found")
	case errors.Is(err, attendance.ErrEmptyBatch):
		BadRequest(w, "Attendance batch must not be empty", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
