package handlers

import (
	"log"
	"net/http"

	"event-marketplace/internal/service"
	"event-marketplace/pkg/metrics"
	"event-marketplace/pkg/middleware"

	"github.com/pocketbase/pocketbase/core"
)

type DashboardHandler struct {
	Renderer  *Renderer
	Dashboard *service.DashboardService
}

// Show renders the bookings of the signed-in account, or a login prompt
// GET /dashboard
func (h *DashboardHandler) Show(e *core.RequestEvent) error {
	view, err := h.Dashboard.Load(middleware.IdentityFrom(e))
	if err != nil {
		log.Printf("❌ [DASHBOARD] %v", err)
	}

	role := "anonymous"
	if view.Authenticated {
		role = string(view.Role)
	}
	metrics.RecordDashboardView(role)

	return h.Renderer.Page(e, http.StatusOK, "public/dashboard.html", map[string]interface{}{
		"Title":     "Dashboard",
		"Dashboard": view,
	})
}
