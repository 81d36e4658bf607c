package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
	"github.com/leavehq/leave_management_app/internal/middleware"
)

// adminStatsHandler handles the admin dashboard and statistics endpoints.
type adminStatsHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newAdminStatsHandler(rs portssvc.ReportingSvcFacade) *adminStatsHandler {
	return &adminStatsHandler{reportingService: rs}
}

// registerAdminStatsRoutes registers the dashboard and stats endpoints on the admin group.
func registerAdminStatsRoutes(admin *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newAdminStatsHandler(reportingService)

	admin.GET("/dashboard", h.dashboard)
	admin.GET("/stats", h.stats)
	admin.GET("/stats/detailed", h.detailedStats)
}

// dashboard godoc
// @Summary Admin dashboard counters
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (h *adminStatsHandler) dashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.reportingService.GetAdminDashboard(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to aggregate dashboard")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// stats godoc
// @Summary Org-wide totals
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdminStatsResponse
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *adminStatsHandler) stats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.reportingService.GetAdminStats(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to aggregate statistics")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// detailedStats godoc
// @Summary Org-wide distributions
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DetailedStatsResponse
// @Security BearerAuth
// @Router /admin/stats/detailed [get]
func (h *adminStatsHandler) detailedStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.reportingService.GetDetailedStats(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to aggregate detailed statistics")
		return
	}

	c.JSON(http.StatusOK, resp)
}
