package zone

import "github.com/sebenza-hr/staffdesk-bff/internal/pkg/validator"

type Bucket string

const (
	BucketWorking Bucket = "working"
	BucketAbsent  Bucket = "absent"
	BucketOff     Bucket = "off"
)

// Occupancy classifies one roster member into exactly one display bucket.
// Overtime is a flag layered on top, not a bucket of its own.
type Occupancy struct {
	Member     Member `json:"member"`
	Bucket     Bucket `json:"bucket"`
	IsOvertime bool   `json:"is_overtime"`
}

// OccupancySummary is the per-zone "all staff status" view.
type OccupancySummary struct {
	ZoneID   string      `json:"zone_id"`
	ZoneName string      `json:"zone_name"`
	Working  int         `json:"working"`
	Absent   int         `json:"absent"`
	Off      int         `json:"off"`
	Overtime int         `json:"overtime"`
	Members  []Occupancy `json:"members"`
}

type CreateZoneRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r CreateZoneRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateZoneRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r UpdateZoneRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be blank"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
