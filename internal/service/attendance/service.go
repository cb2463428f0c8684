package attendance

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	repo   attendance.AttendanceRepository
	logger *slog.Logger

	// Snapshot of the last fetched flagged list, the fallback for optimistic
	// removal when a post-fix reload fails. Later fetch wins; there is no
	// generation guard against a slow response overwriting a newer one.
	mu      sync.Mutex
	flagged []attendance.FlaggedShift
}

func NewAttendanceService(repo attendance.AttendanceRepository, logger *slog.Logger) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

// parseDate parses YYYY-MM-DD format, defaults to today
func parseDate(date string) time.Time {
	now := time.Now()
	if date == "" {
		return now
	}

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return now
	}
	return parsed
}

func (s *AttendanceServiceImpl) ActiveStaff(ctx context.Context, zoneID, date string) (attendance.ActiveStaffResponse, error) {
	day := parseDate(date)

	events, err := s.repo.EventsForDay(ctx, zoneID, day)
	if err != nil {
		return attendance.ActiveStaffResponse{}, err
	}

	return attendance.ActiveStaffResponse{
		Active: ResolveActiveStaff(events),
		Date:   day.Format("2006-01-02"),
	}, nil
}

func (s *AttendanceServiceImpl) FlaggedShifts(ctx context.Context) ([]attendance.FlaggedShiftView, error) {
	shifts, err := s.repo.FlaggedShifts(ctx)
	if err != nil {
		return nil, err
	}

	s.storeSnapshot(shifts)
	return FlaggedShiftViews(shifts, time.Now()), nil
}

// FixShift submits one correction and reloads the review list. A failed
// mutation leaves the list untouched. When the mutation succeeds but the
// reload fails, the fixed record is removed from the held snapshot by id,
// never by index, so a concurrent edit cannot shift the wrong row out.
func (s *AttendanceServiceImpl) FixShift(ctx context.Context, req attendance.FixShiftRequest) (attendance.FixShiftResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.FixShiftResult{}, err
	}

	if err := s.repo.FixShift(ctx, req); err != nil {
		return attendance.FixShiftResult{}, err
	}

	shifts, err := s.repo.FlaggedShifts(ctx)
	if err != nil {
		s.logger.Warn("flagged shift reload failed after fix, falling back to local snapshot",
			slog.String("record_id", req.RecordID),
			slog.Any("error", err),
		)
		kept := s.removeFromSnapshot(req.RecordID)
		views := FlaggedShiftViews(kept, time.Now())
		return attendance.FixShiftResult{
			Shifts:     views,
			ClosePanel: len(views) == 0,
			Refetched:  false,
		}, nil
	}

	s.storeSnapshot(shifts)
	views := FlaggedShiftViews(shifts, time.Now())
	return attendance.FixShiftResult{
		Shifts:     views,
		ClosePanel: len(views) == 0,
		Refetched:  true,
	}, nil
}

func (s *AttendanceServiceImpl) storeSnapshot(shifts []attendance.FlaggedShift) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flagged = shifts
}

func (s *AttendanceServiceImpl) removeFromSnapshot(recordID string) []attendance.FlaggedShift {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]attendance.FlaggedShift, 0, len(s.flagged))
	for _, f := range s.flagged {
		if f.RecordID() == recordID {
			continue
		}
		kept = append(kept, f)
	}
	s.flagged = kept
	return kept
}
