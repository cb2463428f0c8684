package dashboard

import "errors"

// ErrDashboardUnavailable is returned when no dashboard section could be
// loaded at all.
var ErrDashboardUnavailable = errors.New("dashboard unavailable")
