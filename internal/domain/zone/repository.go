package zone

import (
	"context"
	"time"
)

// ZoneRepository is implemented by the upstream staff API client.
type ZoneRepository interface {
	List(ctx context.Context) ([]Zone, error)
	Create(ctx context.Context, req CreateZoneRequest) (Zone, error)
	Update(ctx context.Context, id string, req UpdateZoneRequest) (Zone, error)
	// Stats returns the server-computed attendance aggregates per zone for
	// the given day.
	Stats(ctx context.Context, day time.Time) ([]ZoneStat, error)
}
