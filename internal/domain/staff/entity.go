package staff

import (
	"strings"
	"time"
)

type Staff struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	ZoneID          string    `json:"zone_id"`
	Role            string    `json:"role"`
	PayGroupID      string    `json:"pay_group_id"`
	FacePhotoURL    string    `json:"face_photo_url"`
	LeaveBalance    float64   `json:"leave_balance"`
	OvertimeBalance float64   `json:"overtime_balance"`
	Temporary       bool      `json:"temporary"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DisplayName joins whatever name fragments are present, falling back to
// "Unknown" when both are missing.
func (s Staff) DisplayName() string {
	name := strings.TrimSpace(s.FirstName + " " + s.LastName)
	if name == "" {
		return "Unknown"
	}
	return name
}

// Initials builds initials from the available name fragments.
func (s Staff) Initials() string {
	var b strings.Builder
	for _, name := range []string{s.FirstName, s.LastName} {
		for _, r := range name {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}
