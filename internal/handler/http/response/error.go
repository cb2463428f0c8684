package response

import (
	"errors"
	"net/http"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/attendance"
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/dashboard"
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/leave"
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/payroll"
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/report"
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/staff"
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/zone"
	"github.com/sebenza-hr/staffdesk-bff/internal/pkg/validator"
	"github.com/sebenza-hr/staffdesk-bff/internal/repository/staffapi"
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
	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrFlaggedShiftNotFound):
		NotFound(w, "Flagged shift not found")
	case errors.Is(err, attendance.ErrFixRejected):
		Conflict(w, "Shift fix was rejected")

	// Zone domain errors
	case errors.Is(err, zone.ErrZoneNotFound):
		NotFound(w, "Zone not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Pay run not found")
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrRunFinalized):
		Conflict(w, "Pay run is finalized and cannot be edited")

	// Report domain errors
	case errors.Is(err, report.ErrReportNotAvailable):
		NotFound(w, "Report has not been generated for this period")

	// Dashboard domain errors
	case errors.Is(err, dashboard.ErrDashboardUnavailable):
		BadGateway(w, "Dashboard data is currently unavailable")

	// Default
	default:
		var apiErr *staffapi.APIError
		if errors.As(err, &apiErr) {
			BadGateway(w, "Staff API request failed")
			return
		}
		InternalServerError(w, "An unexpected error occurred")
	}
}
