package handler

import (
	"net/http"

	"cartool/internal/middleware"
	"cartool/internal/policy"
	"cartool/internal/service"
	"cartool/pkg/response"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/analytics")
	{
		group.GET("", middleware.RequireCapability(policy.CapViewAnalytics), h.Snapshot)
		group.GET("/dashboard", middleware.RequireRole(allRoles...), h.Dashboard)
		group.GET("/summary", middleware.RequireCapability(policy.CapViewSummary), h.Summary)
	}
}

// Snapshot handles GET /analytics
// @Summary      Analytics snapshot
// @Description  Finding totals, repeated non-conformities and the NC groupings by process area and clause
// @Tags         analytics
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=model.Analytics}
// @Failure      403  {object}  response.Response
// @Router       /analytics [get]
func (h *AnalyticsHandler) Snapshot(c *gin.Context) {
	snapshot, err := h.analyticsService.Snapshot(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, snapshot))
}

// Dashboard handles GET /analytics/dashboard
// @Summary      Dashboard statistics
// @Description  Headline counts shown on every role's landing view
// @Tags         analytics
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=model.DashboardStats}
// @Router       /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	stats, err := h.analyticsService.Dashboard(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}

// Summary handles GET /analytics/summary
// @Summary      Executive audit summary
// @Description  Maturity level, completion rate and the major/minor non-conformity split
// @Tags         analytics
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=model.AuditSummary}
// @Failure      403  {object}  response.Response
// @Router       /analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.analyticsService.Summary(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}
