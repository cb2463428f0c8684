package staffapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/staff"
)

// staffWire is the upstream record shape. Every field is optional on the
// wire; decoding produces a total staff.Staff with safe defaults so nothing
// downstream has to guard against missing fields.
type staffWire struct {
	ID              *string  `json:"id"`
	FirstName       *string  `json:"firstName"`
	LastName        *string  `json:"lastName"`
	ZoneID          *string  `json:"zoneId"`
	Role            *string  `json:"role"`
	PayGroupID      *string  `json:"payGroupId"`
	FacePhotoURL    *string  `json:"facePhotoUrl"`
	LeaveBalance    *float64 `json:"leaveBalance"`
	OvertimeBalance *float64 `json:"overtimeBalance"`
	Temporary       *bool    `json:"temporary"`
	CreatedAt       *string  `json:"createdAt"`
	UpdatedAt       *string  `json:"updatedAt"`
}

func decodeStaff(w staffWire) staff.Staff {
	return staff.Staff{
		ID:              derefString(w.ID),
		FirstName:       derefString(w.FirstName),
		LastName:        derefString(w.LastName),
		ZoneID:          derefString(w.ZoneID),
		Role:            derefString(w.Role),
		PayGroupID:      derefString(w.PayGroupID),
		FacePhotoURL:    derefString(w.FacePhotoURL),
		LeaveBalance:    derefFloat(w.LeaveBalance),
		OvertimeBalance: derefFloat(w.OvertimeBalance),
		Temporary:       w.Temporary != nil && *w.Temporary,
		CreatedAt:       parseTimestamp(derefString(w.CreatedAt)),
		UpdatedAt:       parseTimestamp(derefString(w.UpdatedAt)),
	}
}

type StaffRepository struct {
	client *Client
}

func NewStaffRepository(client *Client) *StaffRepository {
	return &StaffRepository{client: client}
}

func (r *StaffRepository) List(ctx context.Context, zoneID string) ([]staff.Staff, error) {
	query := url.Values{}
	if zoneID != "" {
		query.Set("zoneId", zoneID)
	}

	var payload struct {
		Data []staffWire `json:"data"`
	}
	if err := r.client.get(ctx, "/staff", query, &payload); err != nil {
		return nil, err
	}

	out := make([]staff.Staff, 0, len(payload.Data))
	for _, w := range payload.Data {
		out = append(out, decodeStaff(w))
	}
	return out, nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	var payload struct {
		Data staffWire `json:"data"`
	}
	if err := r.client.get(ctx, "/staff/"+url.PathEscape(id), nil, &payload); err != nil {
		if IsNotFound(err) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, err
	}
	return decodeStaff(payload.Data), nil
}

func (r *StaffRepository) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.Staff, error) {
	var payload struct {
		Data staffWire `json:"data"`
	}
	if err := r.client.send(ctx, http.MethodPost, "/staff", req, &payload); err != nil {
		return staff.Staff{}, err
	}
	return decodeStaff(payload.Data), nil
}

func (r *StaffRepository) Update(ctx context.Context, id string, req staff.UpdateStaffRequest) (staff.Staff, error) {
	var payload struct {
		Data staffWire `json:"data"`
	}
	if err := r.client.send(ctx, http.MethodPut, "/staff/"+url.PathEscape(id), req, &payload); err != nil {
		if IsNotFound(err) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, err
	}
	return decodeStaff(payload.Data), nil
}

func (r *StaffRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.send(ctx, http.MethodDelete, "/staff/"+url.PathEscape(id), nil, nil); err != nil {
		if IsNotFound(err) {
			return staff.ErrStaffNotFound
		}
		return err
	}
	return nil
}
