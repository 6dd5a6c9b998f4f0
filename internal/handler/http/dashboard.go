package http

import (
	"log/slog"
	"net/http"

	"github.com/campushr/letters-backend-go/internal/domain/dashboard"
	"github.com/campushr/letters-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetStats implements DashboardHandler.
func (h *dashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		slog.Error("Failed to load dashboard stats", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
