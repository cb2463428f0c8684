package staff

import (
	"context"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/staff"
)

type StaffServiceImpl struct {
	repo staff.StaffRepository
}

func NewStaffService(repo staff.StaffRepository) staff.StaffService {
	return &StaffServiceImpl{repo: repo}
}

func (s *StaffServiceImpl) List(ctx context.Context, zoneID string) ([]staff.StaffView, error) {
	members, err := s.repo.List(ctx, zoneID)
	if err != nil {
		return nil, err
	}

	views := make([]staff.StaffView, 0, len(members))
	for _, m := range members {
		views = append(views, staff.NewStaffView(m))
	}
	return views, nil
}

func (s *StaffServiceImpl) GetByID(ctx context.Context, id string) (staff.StaffView, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return staff.StaffView{}, err
	}
	return staff.NewStaffView(member), nil
}

func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffView, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffView{}, err
	}

	member, err := s.repo.Create(ctx, req)
	if err != nil {
		return staff.StaffView{}, err
	}
	return staff.NewStaffView(member), nil
}

func (s *StaffServiceImpl) Update(ctx context.Context, id string, req staff.UpdateStaffRequest) (staff.StaffView, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffView{}, err
	}

	member, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return staff.StaffView{}, err
	}
	return staff.NewStaffView(member), nil
}

func (s *StaffServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
