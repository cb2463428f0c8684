package staffapi

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/zone"
)

type zoneWire struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CreatedAt   *string `json:"createdAt"`
	UpdatedAt   *string `json:"updatedAt"`
}

func decodeZone(w zoneWire) zone.Zone {
	return zone.Zone{
		ID:          derefString(w.ID),
		Name:        derefString(w.Name),
		Description: derefString(w.Description),
		CreatedAt:   parseTimestamp(derefString(w.CreatedAt)),
		UpdatedAt:   parseTimestamp(derefString(w.UpdatedAt)),
	}
}

type memberWire struct {
	ID           *string `json:"id"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	FacePhotoURL *string `json:"facePhotoUrl"`
}

func decodeMembers(ws []memberWire) []zone.Member {
	out := make([]zone.Member, 0, len(ws))
	for _, w := range ws {
		out = append(out, zone.Member{
			ID:           derefString(w.ID),
			FirstName:    derefString(w.FirstName),
			LastName:     derefString(w.LastName),
			FacePhotoURL: derefString(w.FacePhotoURL),
		})
	}
	return out
}

type zoneStatWire struct {
	ZoneID     *string      `json:"zoneId"`
	ZoneName   *string      `json:"zoneName"`
	TotalStaff *int         `json:"totalStaff"`
	SignedIn   []memberWire `json:"signedInDetails"`
	Absent     []memberWire `json:"absenteeDetails"`
	Overtime   []memberWire `json:"overtimeDetails"`
	AllStaff   []memberWire `json:"allStaffDetails"`
}

func decodeZoneStat(w zoneStatWire) zone.ZoneStat {
	total := 0
	if w.TotalStaff != nil {
		total = *w.TotalStaff
	}
	return zone.ZoneStat{
		ZoneID:     derefString(w.ZoneID),
		ZoneName:   derefString(w.ZoneName),
		TotalStaff: total,
		SignedIn:   decodeMembers(w.SignedIn),
		Absent:     decodeMembers(w.Absent),
		Overtime:   decodeMembers(w.Overtime),
		AllStaff:   decodeMembers(w.AllStaff),
	}
}

type ZoneRepository struct {
	client *Client
}

func NewZoneRepository(client *Client) *ZoneRepository {
	return &ZoneRepository{client: client}
}

func (r *ZoneRepository) List(ctx context.Context) ([]zone.Zone, error) {
	var payload struct {
		Data []zoneWire `json:"data"`
	}
	if err := r.client.get(ctx, "/zones", nil, &payload); err != nil {
		return nil, err
	}

	out := make([]zone.Zone, 0, len(payload.Data))
	for _, w := range payload.Data {
		out = append(out, decodeZone(w))
	}
	return out, nil
}

func (r *ZoneRepository) Create(ctx context.Context, req zone.CreateZoneRequest) (zone.Zone, error) {
	var payload struct {
		Data zoneWire `json:"data"`
	}
	if err := r.client.send(ctx, http.MethodPost, "/zones", req, &payload); err != nil {
		return zone.Zone{}, err
	}
	return decodeZone(payload.Data), nil
}

func (r *ZoneRepository) Update(ctx context.Context, id string, req zone.UpdateZoneRequest) (zone.Zone, error) {
	var payload struct {
		Data zoneWire `json:"data"`
	}
	if err := r.client.send(ctx, http.MethodPut, "/zones/"+url.PathEscape(id), req, &payload); err != nil {
		if IsNotFound(err) {
			return zone.Zone{}, zone.ErrZoneNotFound
		}
		return zone.Zone{}, err
	}
	return decodeZone(payload.Data), nil
}

func (r *ZoneRepository) Stats(ctx context.Context, day time.Time) ([]zone.ZoneStat, error) {
	query := url.Values{}
	query.Set("date", day.Format("2006-01-02"))

	var payload struct {
		Data []zoneStatWire `json:"data"`
	}
	if err := r.client.get(ctx, "/zones/stats", query, &payload); err != nil {
		return nil, err
	}

	out := make([]zone.ZoneStat, 0, len(payload.Data))
	for _, w := range payload.Data {
		out = append(out, decodeZoneStat(w))
	}
	return out, nil
}
