package zone

import (
	"context"
	"time"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/zone"
)

// AggregateOccupancy classifies every roster member of a zone into exactly
// one display bucket. Priority when the detail lists overlap: signed-in wins
// over absent, absent over off. Overtime is a flag layered on top of the
// bucket, not a bucket of its own, so a member can be working and overtime
// at the same time. A member in no detail list is off.
func AggregateOccupancy(stat zone.ZoneStat) zone.OccupancySummary {
	signedIn := memberIDSet(stat.SignedIn)
	absent := memberIDSet(stat.Absent)
	overtime := memberIDSet(stat.Overtime)

	summary := zone.OccupancySummary{
		ZoneID:   stat.ZoneID,
		ZoneName: stat.ZoneName,
		Members:  make([]zone.Occupancy, 0, len(stat.AllStaff)),
	}

	for _, m := range stat.AllStaff {
		bucket := zone.BucketOff
		switch {
		case signedIn[m.ID]:
			bucket = zone.BucketWorking
		case absent[m.ID]:
			bucket = zone.BucketAbsent
		}

		occ := zone.Occupancy{
			Member:     m,
			Bucket:     bucket,
			IsOvertime: overtime[m.ID],
		}
		summary.Members = append(summary.Members, occ)

		switch bucket {
		case zone.BucketWorking:
			summary.Working++
		case zone.BucketAbsent:
			summary.Absent++
		case zone.BucketOff:
			summary.Off++
		}
		if occ.IsOvertime {
			summary.Overtime++
		}
	}

	return summary
}

func memberIDSet(members []zone.Member) map[string]bool {
	set := make(map[string]bool, len(members))
	for _, m := range members {
		set[m.ID] = true
	}
	return set
}

type ZoneServiceImpl struct {
	repo zone.ZoneRepository
}

func NewZoneService(repo zone.ZoneRepository) zone.ZoneService {
	return &ZoneServiceImpl{repo: repo}
}

// parseDate parses YYYY-MM-DD format, defaults to today
func parseDate(date string) time.Time {
	now := time.Now()
	if date == "" {
		return now
	}

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return now
	}
	return parsed
}

func (s *ZoneServiceImpl) List(ctx context.Context) ([]zone.Zone, error) {
	return s.repo.List(ctx)
}

func (s *ZoneServiceImpl) Create(ctx context.Context, req zone.CreateZoneRequest) (zone.Zone, error) {
	if err := req.Validate(); err != nil {
		return zone.Zone{}, err
	}
	return s.repo.Create(ctx, req)
}

func (s *ZoneServiceImpl) Update(ctx context.Context, id string, req zone.UpdateZoneRequest) (zone.Zone, error) {
	if err := req.Validate(); err != nil {
		return zone.Zone{}, err
	}
	return s.repo.Update(ctx, id, req)
}

func (s *ZoneServiceImpl) Occupancy(ctx context.Context, date string) ([]zone.OccupancySummary, error) {
	stats, err := s.repo.Stats(ctx, parseDate(date))
	if err != nil {
		return nil, err
	}

	summaries := make([]zone.OccupancySummary, 0, len(stats))
	for _, stat := range stats {
		summaries = append(summaries, AggregateOccupancy(stat))
	}
	return summaries, nil
}
