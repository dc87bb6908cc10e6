package api

import (
	"net/http"
)

// dashboardHandler serves the embedded analytics dashboard.
type dashboardHandler struct{}

func newdashboardHandler() *dashboardHandler {
	return &dashboardHandler{}
}

// HandleDashboard handles GET / and GET /dashboard. The page renders the
// medal tally, country views and series by calling the /api routes.
func (h *dashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, dashboardFS, "dashboard.html")
}
