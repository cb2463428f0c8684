package attendance

import (
	"time"

	"github.com/sebenza-hr/staffdesk-bff/internal/pkg/validator"
)

// FixShiftRequest identifies the concrete record to correct and the
// timestamp to apply to it.
type FixShiftRequest struct {
	RecordID     string           `json:"record_id"`
	Type         FlaggedShiftType `json:"type"`
	ProposedTime time.Time        `json:"proposed_time"`
}

func (r FixShiftRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{Field: "record_id", Message: "record_id is required"})
	}
	if r.Type != FlaggedStale && r.Type != FlaggedOrphan {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be stale or orphan"})
	}
	if r.ProposedTime.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "proposed_time", Message: "proposed_time is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// FlaggedShiftView is the review-panel row shape.
type FlaggedShiftView struct {
	RecordID     string           `json:"record_id"`
	Type         FlaggedShiftType `json:"type"`
	StaffName    string           `json:"staff_name"`
	EventTime    time.Time        `json:"event_time"`
	ElapsedHours int              `json:"elapsed_hours,omitempty"`
	ProposedTime time.Time        `json:"proposed_time"`
}

// FixShiftResult reports the review list after a fix and whether the panel
// should close (only when nothing is left to review).
type FixShiftResult struct {
	Shifts     []FlaggedShiftView `json:"shifts"`
	ClosePanel bool               `json:"close_panel"`
	// Refetched is false when the post-fix reload failed and the list shown
	// is the local snapshot with the fixed record removed.
	Refetched bool `json:"refetched"`
}

// ActiveStaffResponse is the dashboard active-staff figure.
type ActiveStaffResponse struct {
	Active int    `json:"active"`
	Date   string `json:"date"` // Format: "YYYY-MM-DD"
}
