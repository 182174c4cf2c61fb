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

type PlanHandler struct {
	planService service.PlanService
}

func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/audit-plans")
	{
		group.GET("", middleware.RequireRole(model.RoleLeadAuditor, model.RoleAPManager, model.RoleExecutive), h.ListPlans)
		group.POST("", middleware.RequireRole(model.RoleLeadAuditor), h.CreatePlan)
		group.POST("/:id/send", middleware.RequireRole(model.RoleLeadAuditor), h.SendPlan)
		group.POST("/:id/accept", middleware.RequireRole(model.RoleAuditee), h.AcceptPlan)
		group.POST("/:id/complete", middleware.RequireRole(model.RoleLeadAuditor), h.CompletePlan)
	}
}

// ListPlans handles GET /audit-plans
// @Summary      List audit plans
// @Tags         audit-plans
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=response.PagedData}
// @Router       /audit-plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.planService.ListPlans(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	p := pagination.Parse(c)
	page, total := pagination.Slice(plans, p)
	c.JSON(http.StatusOK, response.Paged(http.StatusOK, page, total, p.Page, p.Limit))
}

// CreatePlan handles POST /audit-plans
// @Summary      Create an audit plan
// @Description  Creates a draft audit plan owned by the lead auditor
// @Tags         audit-plans
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreatePlanRequest  true  "Create Plan Payload"
// @Success      201      {object}  response.Response{data=model.AuditPlan}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /audit-plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req service.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), middleware.Viewer(c), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, plan))
}

// SendPlan handles POST /audit-plans/:id/send
// @Summary      Send an audit plan
// @Description  Moves a draft plan to sent so the auditees can accept it
// @Tags         audit-plans
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Plan ID"
// @Success      200  {object}  response.Response{data=model.AuditPlan}
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /audit-plans/{id}/send [post]
func (h *PlanHandler) SendPlan(c *gin.Context) {
	plan, err := h.planService.SendPlan(c.Request.Context(), middleware.Viewer(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, plan))
}

// AcceptPlan handles POST /audit-plans/:id/accept
// @Summary      Accept an audit plan
// @Description  An auditee listed on a sent plan accepts it
// @Tags         audit-plans
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Plan ID"
// @Success      200  {object}  response.Response{data=model.AuditPlan}
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /audit-plans/{id}/accept [post]
func (h *PlanHandler) AcceptPlan(c *gin.Context) {
	plan, err := h.planService.AcceptPlan(c.Request.Context(), middleware.Viewer(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, plan))
}

// CompletePlan handles POST /audit-plans/:id/complete
// @Summary      Complete an audit plan
// @Tags         audit-plans
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Plan ID"
// @Success      200  {object}  response.Response{data=model.AuditPlan}
// @Failure      409  {object}  response.Response
// @Router       /audit-plans/{id}/complete [post]
func (h *PlanHandler) CompletePlan(c *gin.Context) {
	plan, err := h.planService.CompletePlan(c.Request.Context(), middleware.Viewer(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, plan))
}
