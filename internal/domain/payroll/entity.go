package payroll

import "time"

type RunStatus string

const (
	StatusDraft     RunStatus = "draft"
	StatusReview    RunStatus = "review"
	StatusFinalized RunStatus = "finalized"
)

type PayRun struct {
	ID          string    `json:"id"`
	PayGroupID  string    `json:"pay_group_id"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	Status      RunStatus `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// DailyEntry is one row of a payslip's daily breakdown.
type DailyEntry struct {
	Date   time.Time `json:"date"`
	Hours  float64   `json:"hours"`
	Rate   float64   `json:"rate"`
	Amount float64   `json:"amount"`
	Note   string    `json:"note,omitempty"`
}

// PayslipSnapshot is the computed payslip for one staff member in one run.
// Once the parent run is finalized the snapshot is immutable; edits are
// rejected rather than applied.
type PayslipSnapshot struct {
	RunID          string             `json:"run_id"`
	StaffID        string             `json:"staff_id"`
	FirstName      string             `json:"first_name"`
	LastName       string             `json:"last_name"`
	TotalHours     float64            `json:"total_hours"`
	GrossPay       float64            `json:"gross_pay"`
	NetPay         float64            `json:"net_pay"`
	SnapshotRate   float64            `json:"snapshot_rate"`
	Deductions     map[string]float64 `json:"deductions"`
	DailyBreakdown []DailyEntry       `json:"daily_breakdown"`
	Warnings       []string           `json:"warnings"`
	Error          string             `json:"error,omitempty"`
}
