package staffapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/leave"
)

type leaveRequestWire struct {
	ID        *string  `json:"id"`
	StaffID   *string  `json:"staffId"`
	StaffName *string  `json:"staffName"`
	LeaveType *string  `json:"leaveType"`
	StartDate *string  `json:"startDate"`
	EndDate   *string  `json:"endDate"`
	Days      *float64 `json:"days"`
	Reason    *string  `json:"reason"`
	Status    *string  `json:"status"`
	DecidedBy *string  `json:"decidedBy"`
	DecidedAt *string  `json:"decidedAt"`
}

func decodeLeaveRequest(w leaveRequestWire) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:        derefString(w.ID),
		StaffID:   derefString(w.StaffID),
		StaffName: derefString(w.StaffName),
		LeaveType: derefString(w.LeaveType),
		StartDate: parseTimestamp(derefString(w.StartDate)),
		EndDate:   parseTimestamp(derefString(w.EndDate)),
		Days:      derefFloat(w.Days),
		Reason:    derefString(w.Reason),
		Status:    leave.RequestStatus(derefString(w.Status)),
		DecidedBy: derefString(w.DecidedBy),
		DecidedAt: parseTimePtr(w.DecidedAt),
	}
}

type LeaveRepository struct {
	client *Client
}

func NewLeaveRepository(client *Client) *LeaveRepository {
	return &LeaveRepository{client: client}
}

func (r *LeaveRepository) List(ctx context.Context, status leave.RequestStatus) ([]leave.LeaveRequest, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}

	var payload struct {
		Data []leaveRequestWire `json:"data"`
	}
	if err := r.client.get(ctx, "/leave/requests", query, &payload); err != nil {
		return nil, err
	}

	out := make([]leave.LeaveRequest, 0, len(payload.Data))
	for _, w := range payload.Data {
		out = append(out, decodeLeaveRequest(w))
	}
	return out, nil
}

func (r *LeaveRepository) Approve(ctx context.Context, id string, decidedBy string, comment string) error {
	return r.decide(ctx, id, "approve", decidedBy, comment)
}

func (r *LeaveRepository) Reject(ctx context.Context, id string, decidedBy string, comment string) error {
	return r.decide(ctx, id, "reject", decidedBy, comment)
}

func (r *LeaveRepository) decide(ctx context.Context, id, action, decidedBy, comment string) error {
	body := map[string]string{
		"decidedBy": decidedBy,
		"comment":   comment,
	}
	err := r.client.send(ctx, http.MethodPost, "/leave/requests/"+url.PathEscape(id)+"/"+action, body, nil)
	if err != nil {
		if IsNotFound(err) {
			return leave.ErrLeaveRequestNotFound
		}
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusConflict {
			return leave.ErrLeaveRequestAlreadyProcessed
		}
		return err
	}
	return nil
}
