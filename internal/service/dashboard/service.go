package dashboard

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/attendance"
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/dashboard"
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/leave"
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/payroll"
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/report"
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/staff"
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/zone"
)

const maxLatestLeave = 5

type DashboardServiceImpl struct {
	attendanceService attendance.AttendanceService
	zoneService       zone.ZoneService
	staffRepo         staff.StaffRepository
	leaveRepo         leave.LeaveRepository
	payrollRepo       payroll.PayrollRepository
	reportRepo        report.ReportRepository
	logger            *slog.Logger
	now               func() time.Time
}

func NewDashboardService(
	attendanceService attendance.AttendanceService,
	zoneService zone.ZoneService,
	staffRepo staff.StaffRepository,
	leaveRepo leave.LeaveRepository,
	payrollRepo payroll.PayrollRepository,
	reportRepo report.ReportRepository,
	logger *slog.Logger,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		attendanceService: attendanceService,
		zoneService:       zoneService,
		staffRepo:         staffRepo,
		leaveRepo:         leaveRepo,
		payrollRepo:       payrollRepo,
		reportRepo:        reportRepo,
		logger:            logger,
		now:               time.Now,
	}
}

// GetDashboard fans out one fetch per section and assembles whatever came
// back. A section that fails keeps its zero value and is listed in Degraded;
// the call as a whole errors only when every section failed.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	now := s.now()
	resp := &dashboard.DashboardResponse{
		GeneratedAt: now.Format(time.RFC3339),
	}

	var (
		mu       sync.Mutex
		degraded []string
	)
	markDegraded := func(section string, err error) {
		s.logger.Warn("dashboard section failed",
			slog.String("section", section),
			slog.Any("error", err),
		)
		mu.Lock()
		degraded = append(degraded, section)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		active, err := s.attendanceService.ActiveStaff(gctx, "", "")
		if err != nil {
			markDegraded("active_staff", err)
			return nil
		}
		resp.ActiveStaff = active
		return nil
	})

	g.Go(func() error {
		occupancy, err := s.zoneService.Occupancy(gctx, "")
		if err != nil {
			markDegraded("occupancy", err)
			return nil
		}
		resp.Occupancy = occupancy
		return nil
	})

	g.Go(func() error {
		flagged, err := s.attendanceService.FlaggedShifts(gctx)
		if err != nil {
			markDegraded("flagged_shifts", err)
			return nil
		}
		resp.FlaggedShifts = flagged
		return nil
	})

	g.Go(func() error {
		members, err := s.staffRepo.List(gctx, "")
		if err != nil {
			markDegraded("staff_summary", err)
			return nil
		}
		summary := dashboard.StaffSummaryResponse{Total: len(members)}
		for _, m := range members {
			if m.Temporary {
				summary.Temporary++
			}
		}
		resp.StaffSummary = summary
		return nil
	})

	g.Go(func() error {
		pending, err := s.leaveRepo.List(gctx, leave.StatusPending)
		if err != nil {
			markDegraded("pending_leave", err)
			return nil
		}
		latest := pending
		if len(latest) > maxLatestLeave {
			latest = latest[:maxLatestLeave]
		}
		resp.PendingLeave = dashboard.PendingLeaveResponse{
			Count:  len(pending),
			Latest: latest,
		}
		return nil
	})

	g.Go(func() error {
		runs, err := s.payrollRepo.Runs(gctx)
		if err != nil {
			markDegraded("latest_run", err)
			return nil
		}
		resp.LatestRun = latestRun(runs)
		return nil
	})

	g.Go(func() error {
		zones, err := s.zoneService.List(gctx)
		if err != nil {
			markDegraded("zone_count", err)
			return nil
		}
		resp.ZoneCount = len(zones)
		return nil
	})

	g.Go(func() error {
		_, err := s.reportRepo.EMP201(gctx, now.Year(), int(now.Month()))
		switch {
		case err == nil:
			resp.Reports.EMP201Ready = true
		case err == report.ErrReportNotAvailable:
			// Not an outage, just nothing to export yet.
		default:
			markDegraded("emp201", err)
		}
		return nil
	})

	g.Go(func() error {
		_, err := s.reportRepo.Settlement(gctx, taxYear(now))
		switch {
		case err == nil:
			resp.Reports.SettlementReady = true
		case err == report.ErrReportNotAvailable:
		default:
			markDegraded("settlement", err)
		}
		return nil
	})

	// Section goroutines never return errors; Wait is for completion only.
	_ = g.Wait()

	if len(degraded) == sectionCount {
		return nil, dashboard.ErrDashboardUnavailable
	}

	resp.Degraded = degraded
	return resp, nil
}

// sectionCount is the number of independently fetched dashboard sections.
const sectionCount = 9

func latestRun(runs []payroll.PayRun) *payroll.PayRun {
	var latest *payroll.PayRun
	for i := range runs {
		if latest == nil || runs[i].CreatedAt.After(latest.CreatedAt) {
			latest = &runs[i]
		}
	}
	return latest
}

// taxYear labels the South African tax year, which runs March through
// February and is named for the year it ends in.
func taxYear(now time.Time) string {
	year := now.Year()
	if now.Month() >= time.March {
		year++
	}
	return strconv.Itoa(year)
}
