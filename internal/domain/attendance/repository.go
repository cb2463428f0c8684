package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is implemented by the upstream staff API client.
type AttendanceRepository interface {
	// EventsForDay returns the sign-in/out events recorded on the given day,
	// in whatever order the API happens to return them.
	EventsForDay(ctx context.Context, zoneID string, day time.Time) ([]SignInEvent, error)
	FlaggedShifts(ctx context.Context) ([]FlaggedShift, error)
	FixShift(ctx context.Context, fix FixShiftRequest) error
}
