package leave

import "context"

type LeaveService interface {
	List(ctx context.Context, status RequestStatus) ([]LeaveRequest, error)
	Approve(ctx context.Context, id string, decidedBy string, req DecideLeaveRequest) ([]LeaveRequest, error)
	Reject(ctx context.Context, id string, decidedBy string, req DecideLeaveRequest) ([]LeaveRequest, error)
}
