package zone

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/zone"
)

func member(id, first, last string) zone.Member {
	return zone.Member{ID: id, FirstName: first, LastName: last}
}

func TestAggregateOccupancy_NoListsMeansOff(t *testing.T) {
	stat := zone.ZoneStat{
		ZoneID:   "z1",
		ZoneName: "Warehouse",
		AllStaff: []zone.Member{member("a", "Ayanda", "M"), member("b", "Ben", "K")},
	}

	summary := AggregateOccupancy(stat)

	require.Len(t, summary.Members, 2)
	for _, occ := range summary.Members {
		assert.Equal(t, zone.BucketOff, occ.Bucket)
		assert.False(t, occ.IsOvertime)
	}
	assert.Equal(t, 0, summary.Working)
	assert.Equal(t, 0, summary.Absent)
	assert.Equal(t, 2, summary.Off)
}

func TestAggregateOccupancy_SignedInWinsOverAbsent(t *testing.T) {
	both := member("a", "Ayanda", "M")
	stat := zone.ZoneStat{
		ZoneID:   "z1",
		AllStaff: []zone.Member{both},
		SignedIn: []zone.Member{both},
		Absent:   []zone.Member{both},
	}

	summary := AggregateOccupancy(stat)

	require.Len(t, summary.Members, 1)
	assert.Equal(t, zone.BucketWorking, summary.Members[0].Bucket)
	assert.Equal(t, 1, summary.Working)
	assert.Equal(t, 0, summary.Absent)
}

func TestAggregateOccupancy_OvertimeIsAFlagNotABucket(t *testing.T) {
	working := member("a", "Ayanda", "M")
	stat := zone.ZoneStat{
		ZoneID:   "z1",
		AllStaff: []zone.Member{working},
		SignedIn: []zone.Member{working},
		Overtime: []zone.Member{working},
	}

	summary := AggregateOccupancy(stat)

	require.Len(t, summary.Members, 1)
	assert.Equal(t, zone.BucketWorking, summary.Members[0].Bucket)
	assert.True(t, summary.Members[0].IsOvertime)
	assert.Equal(t, 1, summary.Working)
	assert.Equal(t, 1, summary.Overtime)
}

func TestAggregateOccupancy_BucketsAreExhaustive(t *testing.T) {
	stat := zone.ZoneStat{
		ZoneID: "z1",
		AllStaff: []zone.Member{
			member("a", "Ayanda", "M"),
			member("b", "Ben", "K"),
			member("c", "Carol", "S"),
			member("d", "Dumi", "N"),
		},
		SignedIn: []zone.Member{member("a", "Ayanda", "M")},
		Absent:   []zone.Member{member("b", "Ben", "K"), member("a", "Ayanda", "M")},
		Overtime: []zone.Member{member("c", "Carol", "S")},
	}

	summary := AggregateOccupancy(stat)

	buckets := map[string]zone.Bucket{}
	for _, occ := range summary.Members {
		buckets[occ.Member.ID] = occ.Bucket
	}
	assert.Equal(t, zone.BucketWorking, buckets["a"])
	assert.Equal(t, zone.BucketAbsent, buckets["b"])
	assert.Equal(t, zone.BucketOff, buckets["c"])
	assert.Equal(t, zone.BucketOff, buckets["d"])

	assert.Equal(t, len(stat.AllStaff), summary.Working+summary.Absent+summary.Off)
}

type stubZoneRepo struct {
	zones []zone.Zone
	stats []zone.ZoneStat
}

func (s *stubZoneRepo) List(ctx context.Context) ([]zone.Zone, error) { return s.zones, nil }
func (s *stubZoneRepo) Create(ctx context.Context, req zone.CreateZoneRequest) (zone.Zone, error) {
	return zone.Zone{ID: "new", Name: req.Name, Description: req.Description}, nil
}
func (s *stubZoneRepo) Update(ctx context.Context, id string, req zone.UpdateZoneRequest) (zone.Zone, error) {
	return zone.Zone{ID: id}, nil
}
func (s *stubZoneRepo) Stats(ctx context.Context, day time.Time) ([]zone.ZoneStat, error) {
	return s.stats, nil
}

func TestZoneService_OccupancyAggregatesEveryZone(t *testing.T) {
	repo := &stubZoneRepo{
		stats: []zone.ZoneStat{
			{
				ZoneID:   "z1",
				ZoneName: "Warehouse",
				AllStaff: []zone.Member{member("a", "Ayanda", "M")},
				SignedIn: []zone.Member{member("a", "Ayanda", "M")},
			},
			{
				ZoneID:   "z2",
				ZoneName: "Dispatch",
				AllStaff: []zone.Member{member("b", "Ben", "K")},
			},
		},
	}
	svc := NewZoneService(repo)

	summaries, err := svc.Occupancy(context.Background(), "2024-03-04")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].Working)
	assert.Equal(t, 1, summaries[1].Off)
}

func TestZoneService_CreateValidates(t *testing.T) {
	svc := NewZoneService(&stubZoneRepo{})

	_, err := svc.Create(context.Background(), zone.CreateZoneRequest{Name: "  "})
	assert.Error(t, err)
}
