package attendance

import "errors"

// Attendance domain errors
var (
	ErrFlaggedShiftNotFound = errors.New("flagged shift record not found")
	ErrFixRejected          = errors.New("shift fix was rejected by the staff API")
)
