package attendance

import "context"

type AttendanceService interface {
	// ActiveStaff returns the count of staff currently signed in on the
	// given day (format "YYYY-MM-DD", default today), optionally scoped to
	// one zone.
	ActiveStaff(ctx context.Context, zoneID, date string) (ActiveStaffResponse, error)
	// FlaggedShifts returns the review list of server-flagged records.
	FlaggedShifts(ctx context.Context) ([]FlaggedShiftView, error)
	// FixShift applies one proposed correction, reloads the review list and
	// reports whether the panel can close.
	FixShift(ctx context.Context, req FixShiftRequest) (FixShiftResult, error)
}
