package leave

import "time"

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

type LeaveRequest struct {
	ID        string        `json:"id"`
	StaffID   string        `json:"staff_id"`
	StaffName string        `json:"staff_name"`
	LeaveType string        `json:"leave_type"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Days      float64       `json:"days"`
	Reason    string        `json:"reason"`
	Status    RequestStatus `json:"status"`
	DecidedBy string        `json:"decided_by,omitempty"`
	DecidedAt *time.Time    `json:"decided_at,omitempty"`
}
