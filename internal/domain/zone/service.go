package zone

import "context"

type ZoneService interface {
	List(ctx context.Context) ([]Zone, error)
	Create(ctx context.Context, req CreateZoneRequest) (Zone, error)
	Update(ctx context.Context, id string, req UpdateZoneRequest) (Zone, error)
	// Occupancy returns the per-zone "all staff status" classification for
	// the given day (format "YYYY-MM-DD", default today).
	Occupancy(ctx context.Context, date string) ([]OccupancySummary, error)
}
