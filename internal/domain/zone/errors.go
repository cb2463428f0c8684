package zone

import "errors"

// Zone domain errors
var (
	ErrZoneNotFound = errors.New("zone not found")
)
