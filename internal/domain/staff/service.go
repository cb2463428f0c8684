package staff

import "context"

type StaffService interface {
	List(ctx context.Context, zoneID string) ([]StaffView, error)
	GetByID(ctx context.Context, id string) (StaffView, error)
	Create(ctx context.Context, req CreateStaffRequest) (StaffView, error)
	Update(ctx context.Context, id string, req UpdateStaffRequest) (StaffView, error)
	Delete(ctx context.Context, id string) error
}
