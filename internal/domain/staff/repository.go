package staff

import "context"

// StaffRepository is implemented by the upstream staff API client.
type StaffRepository interface {
	List(ctx context.Context, zoneID string) ([]Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	Create(ctx context.Context, req CreateStaffRequest) (Staff, error)
	Update(ctx context.Context, id string, req UpdateStaffRequest) (Staff, error)
	Delete(ctx context.Context, id string) error
}
