package handlers

import (
	"context"
	"net/http"

	"github.com/ArowuTest/adspendwise-backend/internal/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

// DashboardHandler serves the dashboard and service status endpoints
type DashboardHandler struct {
	dashboardService services.DashboardService
	db               Pinger
}

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewDashboardHandler creates a new DashboardHandler. db may be nil, in which
// case the health check does not probe storage.
func NewDashboardHandler(dashboardService services.DashboardService, db Pinger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		db:               db,
	}
}

// Root handles GET /
func (h *DashboardHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "AdSpendWise AI - Ad Campaign Optimizer for Startups"})
}

// Health handles GET /health
func (h *DashboardHandler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(c.Request.Context()); err != nil {
			slog.Warn("Health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database unreachable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetSummary handles GET /dashboard/summary
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
