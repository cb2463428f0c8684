package attendance

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/attendance"
)

type stubAttendanceRepo struct {
	events    []attendance.SignInEvent
	eventsErr error

	flagged     []attendance.FlaggedShift
	flaggedErr  error
	flaggedCall int

	fixErr   error
	fixCalls []attendance.FixShiftRequest
}

func (s *stubAttendanceRepo) EventsForDay(ctx context.Context, zoneID string, day time.Time) ([]attendance.SignInEvent, error) {
	return s.events, s.eventsErr
}

func (s *stubAttendanceRepo) FlaggedShifts(ctx context.Context) ([]attendance.FlaggedShift, error) {
	s.flaggedCall++
	if s.flaggedErr != nil {
		return nil, s.flaggedErr
	}
	return s.flagged, nil
}

func (s *stubAttendanceRepo) FixShift(ctx context.Context, fix attendance.FixShiftRequest) error {
	s.fixCalls = append(s.fixCalls, fix)
	return s.fixErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func event(staffID string, typ attendance.EventType, ts time.Time) attendance.SignInEvent {
	return attendance.SignInEvent{
		ID:        staffID + "-" + string(typ) + "-" + ts.Format(time.RFC3339),
		StaffID:   staffID,
		Type:      typ,
		Timestamp: ts,
	}
}

// ===== ACTIVE-STAFF RESOLVER TESTS =====

func TestResolveActiveStaff_Empty(t *testing.T) {
	assert.Equal(t, 0, ResolveActiveStaff(nil))
	assert.Equal(t, 0, ResolveActiveStaff([]attendance.SignInEvent{}))
}

func TestResolveActiveStaff_SignInThenOut(t *testing.T) {
	t1 := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	t2 := t1.Add(8 * time.Hour)

	events := []attendance.SignInEvent{
		event("a", attendance.EventIn, t1),
		event("a", attendance.EventOut, t2),
	}
	assert.Equal(t, 0, ResolveActiveStaff(events))

	// Reversed input order must not change the outcome: resolution sorts
	// by timestamp before folding.
	reversed := []attendance.SignInEvent{events[1], events[0]}
	assert.Equal(t, 0, ResolveActiveStaff(reversed))
}

func TestResolveActiveStaff_OrderIndependent(t *testing.T) {
	base := time.Date(2024, 3, 4, 7, 0, 0, 0, time.UTC)
	var events []attendance.SignInEvent
	for i, staffID := range []string{"a", "b", "c", "d", "e"} {
		events = append(events, event(staffID, attendance.EventIn, base.Add(time.Duration(i)*time.Minute)))
	}
	// b and d leave again
	events = append(events,
		event("b", attendance.EventOut, base.Add(4*time.Hour)),
		event("d", attendance.EventOut, base.Add(5*time.Hour)),
	)

	want := ResolveActiveStaff(events)
	require.Equal(t, 3, want)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]attendance.SignInEvent, len(events))
		copy(shuffled, events)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, ResolveActiveStaff(shuffled))
	}
}

func TestResolveActiveStaff_OutOnlyIsNotIn(t *testing.T) {
	events := []attendance.SignInEvent{
		event("a", attendance.EventOut, time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC)),
	}
	assert.Equal(t, 0, ResolveActiveStaff(events))
}

func TestResolveActiveStaff_DuplicateTimestampLastInInputWins(t *testing.T) {
	ts := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	inThenOut := []attendance.SignInEvent{
		event("a", attendance.EventIn, ts),
		event("a", attendance.EventOut, ts),
	}
	assert.Equal(t, 0, ResolveActiveStaff(inThenOut))

	outThenIn := []attendance.SignInEvent{
		event("a", attendance.EventOut, ts),
		event("a", attendance.EventIn, ts),
	}
	assert.Equal(t, 1, ResolveActiveStaff(outThenIn))
}

func TestResolveActiveStaff_EpochTimestampSortsFirst(t *testing.T) {
	// A record whose timestamp could not be parsed arrives as the epoch and
	// must not mask the later, well-formed events.
	epoch := time.Unix(0, 0).UTC()
	events := []attendance.SignInEvent{
		event("a", attendance.EventIn, time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)),
		event("a", attendance.EventOut, epoch),
	}
	assert.Equal(t, 1, ResolveActiveStaff(events))
}

// ===== FLAGGED-SHIFT VIEW TESTS =====

func TestNewFlaggedShiftView_StaleElapsedHours(t *testing.T) {
	now := time.Date(2024, 3, 4, 22, 0, 0, 0, time.UTC)
	signIn := event("a", attendance.EventIn, now.Add(-14*time.Hour))
	signIn.StaffName = "Thandi Nkosi"

	view := NewFlaggedShiftView(attendance.FlaggedShift{
		Type:         attendance.FlaggedStale,
		SignIn:       &signIn,
		ProposedTime: now.Add(-6 * time.Hour),
	}, now)

	assert.Equal(t, attendance.FlaggedStale, view.Type)
	assert.Equal(t, "Thandi Nkosi", view.StaffName)
	assert.Equal(t, 14, view.ElapsedHours)
	assert.Equal(t, signIn.ID, view.RecordID)
}

func TestNewFlaggedShiftView_StaleRoundsToNearestHour(t *testing.T) {
	now := time.Date(2024, 3, 4, 22, 0, 0, 0, time.UTC)
	signIn := event("a", attendance.EventIn, now.Add(-13*time.Hour-40*time.Minute))

	view := NewFlaggedShiftView(attendance.FlaggedShift{
		Type:   attendance.FlaggedStale,
		SignIn: &signIn,
	}, now)

	assert.Equal(t, 14, view.ElapsedHours)
}

func TestNewFlaggedShiftView_Orphan(t *testing.T) {
	now := time.Date(2024, 3, 4, 22, 0, 0, 0, time.UTC)
	signOut := event("b", attendance.EventOut, now.Add(-2*time.Hour))

	view := NewFlaggedShiftView(attendance.FlaggedShift{
		Type:         attendance.FlaggedOrphan,
		SignOut:      &signOut,
		ProposedTime: now.Add(-10 * time.Hour),
	}, now)

	assert.Equal(t, attendance.FlaggedOrphan, view.Type)
	assert.Equal(t, "Unknown", view.StaffName)
	assert.Equal(t, 0, view.ElapsedHours)
	assert.Equal(t, signOut.ID, view.RecordID)
}

// ===== FIX FLOW TESTS =====

func flaggedFixture(now time.Time) []attendance.FlaggedShift {
	in1 := event("a", attendance.EventIn, now.Add(-15*time.Hour))
	in2 := event("b", attendance.EventIn, now.Add(-20*time.Hour))
	out1 := event("c", attendance.EventOut, now.Add(-1*time.Hour))
	return []attendance.FlaggedShift{
		{Type: attendance.FlaggedStale, SignIn: &in1, ProposedTime: now.Add(-7 * time.Hour)},
		{Type: attendance.FlaggedStale, SignIn: &in2, ProposedTime: now.Add(-12 * time.Hour)},
		{Type: attendance.FlaggedOrphan, SignOut: &out1, ProposedTime: now.Add(-9 * time.Hour)},
	}
}

func TestFixShift_MutationFailureLeavesListUntouched(t *testing.T) {
	now := time.Now()
	repo := &stubAttendanceRepo{
		flagged: flaggedFixture(now),
		fixErr:  errors.New("boom"),
	}
	svc := NewAttendanceService(repo, testLogger())

	before, err := svc.FlaggedShifts(context.Background())
	require.NoError(t, err)
	require.Len(t, before, 3)

	_, err = svc.FixShift(context.Background(), attendance.FixShiftRequest{
		RecordID:     before[0].RecordID,
		Type:         attendance.FlaggedStale,
		ProposedTime: now,
	})
	require.Error(t, err)

	after, err := svc.FlaggedShifts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestFixShift_RefetchFailureRemovesExactlyMatchingRecord(t *testing.T) {
	now := time.Now()
	shifts := flaggedFixture(now)
	repo := &stubAttendanceRepo{flagged: shifts}
	svc := NewAttendanceService(repo, testLogger())

	views, err := svc.FlaggedShifts(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)

	// Reload after the mutation fails; the service must fall back to the
	// held snapshot, dropping only the fixed record.
	repo.flaggedErr = errors.New("upstream down")
	target := views[1]

	result, err := svc.FixShift(context.Background(), attendance.FixShiftRequest{
		RecordID:     target.RecordID,
		Type:         target.Type,
		ProposedTime: target.ProposedTime,
	})
	require.NoError(t, err)

	assert.False(t, result.Refetched)
	assert.False(t, result.ClosePanel)
	require.Len(t, result.Shifts, 2)
	for _, v := range result.Shifts {
		assert.NotEqual(t, target.RecordID, v.RecordID)
	}
}

func TestFixShift_PanelClosesOnlyWhenListEmpty(t *testing.T) {
	now := time.Now()
	in := event("a", attendance.EventIn, now.Add(-15*time.Hour))
	repo := &stubAttendanceRepo{
		flagged: []attendance.FlaggedShift{
			{Type: attendance.FlaggedStale, SignIn: &in, ProposedTime: now.Add(-7 * time.Hour)},
		},
	}
	svc := NewAttendanceService(repo, testLogger())

	_, err := svc.FlaggedShifts(context.Background())
	require.NoError(t, err)

	repo.flaggedErr = errors.New("upstream down")
	result, err := svc.FixShift(context.Background(), attendance.FixShiftRequest{
		RecordID:     in.ID,
		Type:         attendance.FlaggedStale,
		ProposedTime: now,
	})
	require.NoError(t, err)

	assert.True(t, result.ClosePanel)
	assert.Empty(t, result.Shifts)
}

func TestFixShift_SuccessfulRefetchWins(t *testing.T) {
	now := time.Now()
	repo := &stubAttendanceRepo{flagged: flaggedFixture(now)}
	svc := NewAttendanceService(repo, testLogger())

	views, err := svc.FlaggedShifts(context.Background())
	require.NoError(t, err)

	// Server drops the fixed record on reload.
	repo.flagged = repo.flagged[1:]

	result, err := svc.FixShift(context.Background(), attendance.FixShiftRequest{
		RecordID:     views[0].RecordID,
		Type:         views[0].Type,
		ProposedTime: now,
	})
	require.NoError(t, err)

	assert.True(t, result.Refetched)
	assert.Len(t, result.Shifts, 2)
	require.Len(t, repo.fixCalls, 1)
	assert.Equal(t, views[0].RecordID, repo.fixCalls[0].RecordID)
}

func TestActiveStaff_UsesResolver(t *testing.T) {
	base := time.Date(2024, 3, 4, 7, 0, 0, 0, time.UTC)
	repo := &stubAttendanceRepo{
		events: []attendance.SignInEvent{
			event("a", attendance.EventIn, base),
			event("b", attendance.EventIn, base.Add(time.Minute)),
			event("a", attendance.EventOut, base.Add(9*time.Hour)),
		},
	}
	svc := NewAttendanceService(repo, testLogger())

	resp, err := svc.ActiveStaff(context.Background(), "", "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Active)
	assert.Equal(t, "2024-03-04", resp.Date)
}
