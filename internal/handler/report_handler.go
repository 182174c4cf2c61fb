package handler

import (
	"net/http"

	"cartool/internal/middleware"
	"cartool/internal/model"
	"cartool/internal/service"
	"cartool/pkg/pagination"
	"cartool/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/audit-reports")
	{
		group.GET("", middleware.RequireRole(model.RoleLeadAuditor, model.RoleAuditor, model.RoleAPManager, model.RoleExecutive), h.ListReports)
		group.POST("", middleware.RequireRole(model.RoleLeadAuditor, model.RoleAuditor), h.CreateReport)
		group.POST("/:id/submit", middleware.RequireRole(model.RoleLeadAuditor, model.RoleAuditor), h.SubmitReport)
		group.POST("/:id/approve", middleware.RequireRole(model.RoleAPManager), h.ApproveReport)
	}
}

// ListReports handles GET /audit-reports
// @Summary      List audit reports
// @Tags         audit-reports
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=response.PagedData}
// @Router       /audit-reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.reportService.ListReports(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	p := pagination.Parse(c)
	page, total := pagination.Slice(reports, p)
	c.JSON(http.StatusOK, response.Paged(http.StatusOK, page, total, p.Page, p.Limit))
}

// CreateReport handles POST /audit-reports
// @Summary      Create an audit report
// @Description  Creates a draft report against an accepted or completed plan
// @Tags         audit-reports
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateReportRequest  true  "Create Report Payload"
// @Success      201      {object}  response.Response{data=model.AuditReport}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /audit-reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req service.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	report, err := h.reportService.CreateReport(c.Request.Context(), middleware.Viewer(c), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, report))
}

// SubmitReport handles POST /audit-reports/:id/submit
// @Summary      Submit an audit report
// @Tags         audit-reports
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Report ID"
// @Success      200  {object}  response.Response{data=model.AuditReport}
// @Failure      409  {object}  response.Response
// @Router       /audit-reports/{id}/submit [post]
func (h *ReportHandler) SubmitReport(c *gin.Context) {
	report, err := h.reportService.SubmitReport(c.Request.Context(), middleware.Viewer(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, report))
}

// ApproveReport handles POST /audit-reports/:id/approve
// @Summary      Approve an audit report
// @Description  The audit programme manager approves a submitted report
// @Tags         audit-reports
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Report ID"
// @Success      200  {object}  response.Response{data=model.AuditReport}
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /audit-reports/{id}/approve [post]
func (h *ReportHandler) ApproveReport(c *gin.Context) {
	report, err := h.reportService.ApproveReport(c.Request.Context(), middleware.Viewer(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, report))
}
