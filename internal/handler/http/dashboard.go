package http

import (
	"net/http"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/dashboard"
	"github.com/sebenza-hr/staffdesk-bff/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
