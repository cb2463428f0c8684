package staffapi

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/attendance"
)

type signInEventWire struct {
	ID        *string `json:"id"`
	StaffID   *string `json:"staffId"`
	StaffName *string `json:"staffName"`
	ZoneID    *string `json:"zoneId"`
	Type      *string `json:"type"`
	Timestamp *string `json:"timestamp"`
}

func decodeSignInEvent(w signInEventWire) attendance.SignInEvent {
	return attendance.SignInEvent{
		ID:        derefString(w.ID),
		StaffID:   derefString(w.StaffID),
		StaffName: derefString(w.StaffName),
		ZoneID:    derefString(w.ZoneID),
		Type:      attendance.EventType(derefString(w.Type)),
		Timestamp: parseTimestamp(derefString(w.Timestamp)),
	}
}

type flaggedShiftWire struct {
	Type          *string          `json:"type"`
	SignIn        *signInEventWire `json:"signIn"`
	SignOut       *signInEventWire `json:"signOut"`
	DurationHours *float64         `json:"durationHours"`
	ProposedTime  *string          `json:"proposedTime"`
}

func decodeFlaggedShift(w flaggedShiftWire) attendance.FlaggedShift {
	f := attendance.FlaggedShift{
		Type:          attendance.FlaggedShiftType(derefString(w.Type)),
		DurationHours: derefFloat(w.DurationHours),
		ProposedTime:  parseTimestamp(derefString(w.ProposedTime)),
	}
	if w.SignIn != nil {
		e := decodeSignInEvent(*w.SignIn)
		f.SignIn = &e
	}
	if w.SignOut != nil {
		e := decodeSignInEvent(*w.SignOut)
		f.SignOut = &e
	}
	return f
}

type AttendanceRepository struct {
	client *Client
}

func NewAttendanceRepository(client *Client) *AttendanceRepository {
	return &AttendanceRepository{client: client}
}

func (r *AttendanceRepository) EventsForDay(ctx context.Context, zoneID string, day time.Time) ([]attendance.SignInEvent, error) {
	query := url.Values{}
	query.Set("date", day.Format("2006-01-02"))
	if zoneID != "" {
		query.Set("zoneId", zoneID)
	}

	var payload struct {
		Data []signInEventWire `json:"data"`
	}
	if err := r.client.get(ctx, "/attendance/events", query, &payload); err != nil {
		return nil, err
	}

	out := make([]attendance.SignInEvent, 0, len(payload.Data))
	for _, w := range payload.Data {
		out = append(out, decodeSignInEvent(w))
	}
	return out, nil
}

func (r *AttendanceRepository) FlaggedShifts(ctx context.Context) ([]attendance.FlaggedShift, error) {
	var payload struct {
		Data []flaggedShiftWire `json:"data"`
	}
	if err := r.client.get(ctx, "/attendance/flagged-shifts", nil, &payload); err != nil {
		return nil, err
	}

	out := make([]attendance.FlaggedShift, 0, len(payload.Data))
	for _, w := range payload.Data {
		out = append(out, decodeFlaggedShift(w))
	}
	return out, nil
}

func (r *AttendanceRepository) FixShift(ctx context.Context, fix attendance.FixShiftRequest) error {
	body := map[string]interface{}{
		"proposedTime": fix.ProposedTime.UTC().Format(time.RFC3339),
	}
	// The record id names the concrete event the correction applies to: the
	// open sign-in for stale shifts, the unmatched sign-out for orphans.
	switch fix.Type {
	case attendance.FlaggedStale:
		body["signInId"] = fix.RecordID
	case attendance.FlaggedOrphan:
		body["signOutId"] = fix.RecordID
	}

	if err := r.client.send(ctx, http.MethodPost, "/attendance/flagged-shifts/fix", body, nil); err != nil {
		if IsNotFound(err) {
			return attendance.ErrFlaggedShiftNotFound
		}
		return err
	}
	return nil
}
