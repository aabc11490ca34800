package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/designation"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/backend"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
)

// MessageUnavailable is shown when the backend cannot be reached.
const MessageUnavailable = "Unable to reach the server"

// HandleError maps domain errors to HTTP responses and returns the message
// shown to the operator.
func HandleError(w http.ResponseWriter, err error) string {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ByField())
		return "Validation failed: " + validationErrs.Error()
	}

	var importErr *employee.ImportViolationsError
	if errors.As(err, &importErr) {
		message := capitalize(employee.ErrImportHasViolations.Error())
		ImportRejected(w, message, importErr.Violations)
		return message
	}

	// Upstream responded with an error of its own
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		message := apiErr.Message
		if message == "" {
			message = http.StatusText(status)
		}
		Upstream(w, status, message)
		return message
	}

	var message string
	switch {
	case errors.Is(err, backend.ErrUnavailable):
		message = MessageUnavailable
		BadGateway(w, message)

	// Upload and export errors
	case errors.Is(err, spreadsheet.ErrMalformed),
		errors.Is(err, spreadsheet.ErrUnsupportedType),
		errors.Is(err, spreadsheet.ErrUnknownFormat),
		errors.Is(err, employee.ErrImportEmpty),
		errors.Is(err, leave.ErrInvalidDateRange):
		message = capitalize(err.Error())
		BadRequest(w, message, nil)

	// Not found
	case errors.Is(err, designation.ErrDesignationNotFound):
		message = "Designation not found"
		NotFound(w, message)
	case errors.Is(err, employee.ErrEmployeeNotFound):
		message = "Employee not found"
		NotFound(w, message)
	case errors.Is(err, employee.ErrImportNotFound):
		message = "Import preview not found or expired"
		NotFound(w, message)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		message = "Attendance record not found"
		NotFound(w, message)
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		message = "Leave request not found"
		NotFound(w, message)
	case errors.Is(err, leave.ErrLeaveCreditNotFound):
		message = "Leave credit not found"
		NotFound(w, message)
	case errors.Is(err, payroll.ErrPayrollNotFound):
		message = "Payroll record not found"
		NotFound(w, message)

	// State conflicts
	case errors.Is(err, leave.ErrAlreadyDecided):
		message = "Leave request already decided"
		Conflict(w, message)
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive),
		errors.Is(err, employee.ErrEmployeeAlreadyActive),
		errors.Is(err, employee.ErrImportInProgress),
		errors.Is(err, form.ErrNoDraft),
		errors.Is(err, form.ErrNotEditing),
		errors.Is(err, form.ErrSubmitInProgress):
		message = capitalize(err.Error())
		Conflict(w, message)

	// Default
	default:
		message = "An unexpected error occurred"
		InternalServerError(w, message)
	}
	return message
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
