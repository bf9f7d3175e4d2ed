package response

import (
	"errors"
	"net/http"

	"github.com/nomina-hq/nomina-backend-go/internal/domain/auth"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/payroll"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/settings"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/user"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/workevent"
	"github.com/nomina-hq/nomina-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDocumentExists):
		Conflict(w, "Document already registered")

	// Work event domain errors
	case errors.Is(err, workevent.ErrWorkEventNotFound):
		NotFound(w, "Work event not found")
	case errors.Is(err, workevent.ErrWorkEventAlreadyProcessed):
		Conflict(w, "Work event already processed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrPayrollItemNotFound):
		NotFound(w, "Payroll item not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyProcessed):
		Conflict(w, "Payroll period already processed")
	case errors.Is(err, payroll.ErrNoActiveEmployees):
		BadRequest(w, "No active employees to calculate", nil)

	// Settings domain errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Settings not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
