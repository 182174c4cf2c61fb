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

type ActionHandler struct {
	actionService service.ActionService
}

func NewActionHandler(actionService service.ActionService) *ActionHandler {
	return &ActionHandler{actionService: actionService}
}

func (h *ActionHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/actions")
	{
		group.GET("", middleware.RequireRole(allRoles...), h.ListActions)
		group.GET("/timeline", middleware.RequireRole(allRoles...), h.Timeline)
		group.POST("", middleware.RequireRole(model.RoleAuditee), h.DeclareAction)
		group.POST("/:id/evidence", middleware.RequireRole(model.RoleAuditee), h.UploadEvidence)
		group.POST("/:id/verify", middleware.RequireRole(model.RoleLeadAuditor, model.RoleAuditor), h.VerifyAction)
	}
}

// ListActions handles GET /actions
// @Summary      List actions
// @Description  Full list for auditors and managers, own actions only for auditees
// @Tags         actions
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=response.PagedData}
// @Router       /actions [get]
func (h *ActionHandler) ListActions(c *gin.Context) {
	actions, err := h.actionService.ListActions(c.Request.Context(), middleware.Viewer(c))
	if err != nil {
		fail(c, err)
		return
	}

	p := pagination.Parse(c)
	page, total := pagination.Slice(actions, p)
	c.JSON(http.StatusOK, response.Paged(http.StatusOK, page, total, p.Page, p.Limit))
}

// Timeline handles GET /actions/timeline
// @Summary      Action timeline
// @Description  Visible actions ordered by due date, optionally filtered by status
// @Tags         actions
// @Security     BearerAuth
// @Produce      json
// @Param        status  query     string  false  "Filter by workflow status"
// @Success      200     {object}  response.Response{data=[]model.Action}
// @Router       /actions/timeline [get]
func (h *ActionHandler) Timeline(c *gin.Context) {
	actions, err := h.actionService.Timeline(c.Request.Context(), middleware.Viewer(c), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, actions))
}

// DeclareAction handles POST /actions
// @Summary      Declare a remediation action
// @Description  The assigned auditee declares an action against their CAR form
// @Tags         actions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.DeclareActionRequest  true  "Declare Action Payload"
// @Success      201      {object}  response.Response{data=model.Action}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /actions [post]
func (h *ActionHandler) DeclareAction(c *gin.Context) {
	var req service.DeclareActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	action, err := h.actionService.DeclareAction(c.Request.Context(), middleware.Viewer(c), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, action))
}

// UploadEvidence handles POST /actions/:id/evidence
// @Summary      Attach evidence to an action
// @Description  Stores an evidence reference and moves the action to verification
// @Tags         actions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Action ID"
// @Param        payload  body      service.UploadEvidenceRequest  true  "Evidence Reference"
// @Success      200      {object}  response.Response{data=model.Action}
// @Failure      403      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /actions/{id}/evidence [post]
func (h *ActionHandler) UploadEvidence(c *gin.Context) {
	var req service.UploadEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	action, err := h.actionService.UploadEvidence(c.Request.Context(), middleware.Viewer(c), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, action))
}

// VerifyAction handles POST /actions/:id/verify
// @Summary      Verify an action
// @Description  An auditor passes or fails an action awaiting verification
// @Tags         actions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Action ID"
// @Param        payload  body      service.VerifyActionRequest  true  "Verdict"
// @Success      200      {object}  response.Response{data=model.Action}
// @Failure      403      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /actions/{id}/verify [post]
func (h *ActionHandler) VerifyAction(c *gin.Context) {
	var req service.VerifyActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	action, err := h.actionService.VerifyAction(c.Request.Context(), middleware.Viewer(c), c.Param("id"), req.Passed)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, action))
}
