package leave

import "context"

// LeaveRepository is implemented by the upstream staff API client.
type LeaveRepository interface {
	List(ctx context.Context, status RequestStatus) ([]LeaveRequest, error)
	Approve(ctx context.Context, id string, decidedBy string, comment string) error
	Reject(ctx context.Context, id string, decidedBy string, comment string) error
}
