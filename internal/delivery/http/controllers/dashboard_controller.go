package controllers

import (
	"log/slog"
	"net/http"

	"invites/internal/delivery/http/views"
	"invites/internal/domain"
)

type DashboardController struct {
	Logger   *slog.Logger
	Service  domain.DashboardService
	Renderer PageRenderer
}

func NewDashboardController(logger *slog.Logger, svc domain.DashboardService, renderer PageRenderer) *DashboardController {
	return &DashboardController{
		Logger:   logger,
		Service:  svc,
		Renderer: renderer,
	}
}

// Show handles GET /admin_dashboard.
func (c *DashboardController) Show(w http.ResponseWriter, r *http.Request) {
	dashboard, err := c.Service.Load(r.Context())
	if err != nil {
		serverError(w, r, c.Logger, c.Renderer, err)
		return
	}
	renderPage(w, r, c.Logger, c.Renderer, http.StatusOK, views.PageAdminDashboard, views.Page{
		Title: "Dashboard",
		Admin: true,
		Data:  dashboard,
	})
}
