package payroll

import (
	"time"

	"github.com/sebenza-hr/staffdesk-bff/internal/pkg/validator"
)

// UpdateDailyEntryRequest edits one daily-breakdown row of a payslip in a
// run that has not been finalized. Totals are never recomputed locally; the
// snapshot is refetched after the edit is accepted upstream.
type UpdateDailyEntryRequest struct {
	Date  time.Time `json:"date"`
	Hours float64   `json:"hours"`
	Note  string    `json:"note"`
}

func (r UpdateDailyEntryRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Date.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	}
	if r.Hours < 0 || r.Hours > 24 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be between 0 and 24"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PayslipExport is a rendered payslip PDF ready for download.
type PayslipExport struct {
	Filename string
	Content  []byte
}

// RunDetailResponse is a pay run with all of its payslips for review.
type RunDetailResponse struct {
	Run      PayRun            `json:"run"`
	Payslips []PayslipSnapshot `json:"payslips"`
}
