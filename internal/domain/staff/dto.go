package staff

import "github.com/sebenza-hr/staffdesk-bff/internal/pkg/validator"

type CreateStaffRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	ZoneID       string `json:"zone_id"`
	Role         string `json:"role"`
	PayGroupID   string `json:"pay_group_id"`
	FacePhotoURL string `json:"face_photo_url"`
	Temporary    bool   `json:"temporary"`
}

func (r CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.FirstName) && validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "at least one name part is required"})
	}
	if validator.IsEmpty(r.ZoneID) {
		errs = append(errs, validator.ValidationError{Field: "zone_id", Message: "zone_id is required"})
	}
	if validator.IsEmpty(r.PayGroupID) {
		errs = append(errs, validator.ValidationError{Field: "pay_group_id", Message: "pay_group_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStaffRequest struct {
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	ZoneID       *string `json:"zone_id,omitempty"`
	Role         *string `json:"role,omitempty"`
	PayGroupID   *string `json:"pay_group_id,omitempty"`
	FacePhotoURL *string `json:"face_photo_url,omitempty"`
}

func (r UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.ZoneID != nil && validator.IsEmpty(*r.ZoneID) {
		errs = append(errs, validator.ValidationError{Field: "zone_id", Message: "zone_id cannot be blank"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// StaffView is the list/detail shape returned to the UI, with display
// fallbacks already applied.
type StaffView struct {
	Staff
	DisplayName string `json:"display_name"`
	Initials    string `json:"initials"`
}

func NewStaffView(s Staff) StaffView {
	return StaffView{
		Staff:       s,
		DisplayName: s.DisplayName(),
		Initials:    s.Initials(),
	}
}
