package dashboard

import "context"

type DashboardService interface {
	// GetDashboard loads every dashboard section concurrently. Individual
	// section failures degrade to defaults; an error is returned only when
	// no section could be loaded at all.
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
