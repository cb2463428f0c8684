package zone

import "time"

type Zone struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Member is the roster entry shape the stats endpoint returns per zone.
type Member struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	FacePhotoURL string `json:"face_photo_url"`
}

// ZoneStat is the server-computed attendance aggregate for one zone. The
// three detail lists are expected to be disjoint subsets of AllStaff but the
// aggregator tolerates overlap (signed-in wins over absent).
type ZoneStat struct {
	ZoneID     string   `json:"zone_id"`
	ZoneName   string   `json:"zone_name"`
	TotalStaff int      `json:"total_staff"`
	SignedIn   []Member `json:"signed_in_details"`
	Absent     []Member `json:"absentee_details"`
	Overtime   []Member `json:"overtime_details"`
	AllStaff   []Member `json:"all_staff_details"`
}
