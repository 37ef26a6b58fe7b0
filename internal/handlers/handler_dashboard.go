package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/swiftbill/invoicing_app/internal/core/ports/services"
	"github.com/swiftbill/invoicing_app/internal/middleware"
)

// dashboardHandler serves aggregate figures for the dashboard.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := &dashboardHandler{dashboardService: dashboardService}

	rg.GET("/dashboard/summary", h.getSummary)
}

// getSummary godoc
// @Summary Get dashboard summary figures
// @Description Aggregates invoice grand totals: outstanding, paid in the last 30 days, overdue and draft amounts
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
