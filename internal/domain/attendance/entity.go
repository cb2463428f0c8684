package attendance

import "time"

type EventType string

const (
	EventIn  EventType = "in"
	EventOut EventType = "out"
)

// SignInEvent is a single sign-in or sign-out action at a zone. Timestamps
// that the upstream API could not supply in a parseable form are decoded to
// the Unix epoch at the repository boundary, so they sort first instead of
// failing a whole batch.
type SignInEvent struct {
	ID        string    `json:"id"`
	StaffID   string    `json:"staff_id"`
	StaffName string    `json:"staff_name"`
	ZoneID    string    `json:"zone_id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

type FlaggedShiftType string

const (
	// FlaggedStale is an open shift older than the operational threshold
	// with no matching sign-out.
	FlaggedStale FlaggedShiftType = "stale"
	// FlaggedOrphan is a sign-out with no matching prior sign-in.
	FlaggedOrphan FlaggedShiftType = "orphan"
)

// FlaggedShift is classified server-side; this service only displays it and
// relays the operator's chosen fix.
type FlaggedShift struct {
	Type          FlaggedShiftType `json:"type"`
	SignIn        *SignInEvent     `json:"sign_in,omitempty"`
	SignOut       *SignInEvent     `json:"sign_out,omitempty"`
	DurationHours float64          `json:"duration_hours,omitempty"`
	ProposedTime  time.Time        `json:"proposed_time"`
}

// RecordID returns the id of the concrete event a fix applies to: the
// sign-in for stale shifts, the sign-out for orphans.
func (f FlaggedShift) RecordID() string {
	switch f.Type {
	case FlaggedStale:
		if f.SignIn != nil {
			return f.SignIn.ID
		}
	case FlaggedOrphan:
		if f.SignOut != nil {
			return f.SignOut.ID
		}
	}
	return ""
}
