package response

import (
	"errors"
	"net/http"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/attendance"
	"github.com/buildcrew/sitepulse-backend-go/internal/domain/auth"
	"github.com/buildcrew/sitepulse-backend-go/internal/domain/dpr"
	"github.com/buildcrew/sitepulse-backend-go/internal/domain/face"
	"github.com/buildcrew/sitepulse-backend-go/internal/domain/site"
	"github.com/buildcrew/sitepulse-backend-go/internal/domain/task"
	"github.com/buildcrew/sitepulse-backend-go/internal/domain/user"
	"github.com/buildcrew/sitepulse-backend-go/internal/domain/worker"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Face domain errors
	case errors.Is(err, face.ErrDescriptorNotFound):
		NotFound(w, "No descriptor enrolled for this email")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoRecordsToExport):
		NotFound(w, "No attendance records to export")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrEmailExists):
		Conflict(w, "A worker with this email already exists")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")

	// Site domain errors
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")

	// DPR domain errors
	case errors.Is(err, dpr.ErrDPRNotFound):
		NotFound(w, "No progress reports found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
