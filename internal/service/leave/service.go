package leave

import (
	"context"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/leave"
)

type LeaveServiceImpl struct {
	repo leave.LeaveRepository
}

func NewLeaveService(repo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{repo: repo}
}

func (s *LeaveServiceImpl) List(ctx context.Context, status leave.RequestStatus) ([]leave.LeaveRequest, error) {
	return s.repo.List(ctx, status)
}

// Approve applies the decision upstream and returns the refetched pending
// queue so the approvals view never shows locally mutated state.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string, decidedBy string, req leave.DecideLeaveRequest) ([]leave.LeaveRequest, error) {
	if err := s.repo.Approve(ctx, id, decidedBy, req.Comment); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, leave.StatusPending)
}

func (s *LeaveServiceImpl) Reject(ctx context.Context, id string, decidedBy string, req leave.DecideLeaveRequest) ([]leave.LeaveRequest, error) {
	if err := s.repo.Reject(ctx, id, decidedBy, req.Comment); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, leave.StatusPending)
}
