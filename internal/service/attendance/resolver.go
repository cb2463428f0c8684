package attendance

import (
	"math"
	"sort"
	"time"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/attendance"
)

// ResolveActiveStaff collapses a day's sign-in/out events into the number of
// staff currently signed in. The input is stable-sorted by timestamp before
// folding, so the result is the same for any permutation of the input and
// events sharing a timestamp keep their input order, with the last one
// winning. A staff member whose only event is a sign-out counts as not in.
func ResolveActiveStaff(events []attendance.SignInEvent) int {
	sorted := make([]attendance.SignInEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	last := make(map[string]attendance.EventType, len(sorted))
	for _, e := range sorted {
		if e.StaffID == "" {
			continue
		}
		last[e.StaffID] = e.Type
	}

	active := 0
	for _, t := range last {
		if t == attendance.EventIn {
			active++
		}
	}
	return active
}

// NewFlaggedShiftView maps one server-flagged record into its review-panel
// row. For stale shifts the elapsed duration is recomputed against now and
// rounded to the nearest whole hour for display.
func NewFlaggedShiftView(f attendance.FlaggedShift, now time.Time) attendance.FlaggedShiftView {
	view := attendance.FlaggedShiftView{
		RecordID:     f.RecordID(),
		Type:         f.Type,
		ProposedTime: f.ProposedTime,
	}
	switch f.Type {
	case attendance.FlaggedStale:
		if f.SignIn != nil {
			view.StaffName = staffNameOrUnknown(f.SignIn.StaffName)
			view.EventTime = f.SignIn.Timestamp
			view.ElapsedHours = int(math.Round(now.Sub(f.SignIn.Timestamp).Hours()))
		}
	case attendance.FlaggedOrphan:
		if f.SignOut != nil {
			view.StaffName = staffNameOrUnknown(f.SignOut.StaffName)
			view.EventTime = f.SignOut.Timestamp
		}
	}
	return view
}

// FlaggedShiftViews maps a whole flagged list, preserving server order.
func FlaggedShiftViews(shifts []attendance.FlaggedShift, now time.Time) []attendance.FlaggedShiftView {
	views := make([]attendance.FlaggedShiftView, 0, len(shifts))
	for _, f := range shifts {
		views = append(views, NewFlaggedShiftView(f, now))
	}
	return views
}

func staffNameOrUnknown(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}
