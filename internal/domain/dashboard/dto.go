package dashboard

import (
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/attendance"
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/leave"
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/payroll"
	"github.com/sebenza-hr/staffdesk-bff/internal/domain/zone"
)

// DashboardResponse is the combined response for the main dashboard
// endpoint. Every section is fetched independently; a failed section is
// replaced by its zero value rather than failing the whole response.
type DashboardResponse struct {
	ActiveStaff   attendance.ActiveStaffResponse `json:"active_staff"`
	Occupancy     []zone.OccupancySummary        `json:"occupancy"`
	FlaggedShifts []attendance.FlaggedShiftView  `json:"flagged_shifts"`
	StaffSummary  StaffSummaryResponse           `json:"staff_summary"`
	PendingLeave  PendingLeaveResponse           `json:"pending_leave"`
	LatestRun     *payroll.PayRun                `json:"latest_run"`
	Reports       ReportAvailabilityResponse     `json:"reports"`
	ZoneCount     int                            `json:"zone_count"`
	GeneratedAt   string                         `json:"generated_at"`
	// Degraded lists the sections that fell back to defaults this load.
	Degraded []string `json:"degraded,omitempty"`
}

// StaffSummaryResponse contains roster headline numbers.
type StaffSummaryResponse struct {
	Total     int `json:"total"`
	Temporary int `json:"temporary"`
}

// PendingLeaveResponse contains the approval queue headline.
type PendingLeaveResponse struct {
	Count  int                  `json:"count"`
	Latest []leave.LeaveRequest `json:"latest"` // at most 5
}

// ReportAvailabilityResponse reports which statutory exports can be offered
// for the current period; the UI disables export controls otherwise.
type ReportAvailabilityResponse struct {
	EMP201Ready     bool `json:"emp201_ready"`
	SettlementReady bool `json:"settlement_ready"`
}
