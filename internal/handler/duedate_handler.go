package handler

import (
	"net/http"

	"cartool/internal/middleware"
	"cartool/internal/model"
	"cartool/internal/policy"
	"cartool/internal/service"
	"cartool/pkg/response"

	"github.com/gin-gonic/gin"
)

type DueDateHandler struct {
	dueDateService service.DueDateService
}

func NewDueDateHandler(dueDateService service.DueDateService) *DueDateHandler {
	return &DueDateHandler{dueDateService: dueDateService}
}

func (h *DueDateHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/due-date-logs")
	{
		group.GET("", middleware.RequireCapability(policy.CapViewDueDates), h.ListLogs)
		group.POST("", middleware.RequireRole(model.RoleAuditee), h.RequestExtension)
		group.POST("/:id/approve", middleware.RequireCapability(policy.CapDueDateDecide), h.ApproveLog)
		group.POST("/:id/reject", middleware.RequireCapability(policy.CapDueDateDecide), h.RejectLog)
	}
}

// ListLogs handles GET /due-date-logs
// @Summary      List due date extension logs
// @Tags         due-date-logs
// @Security     BearerAuth
// @Produce      json
// @Param        status  query     string  false  "Filter by status (pending, approved, rejected)"
// @Success      200     {object}  response.Response{data=[]model.DueDateLog}
// @Router       /due-date-logs [get]
func (h *DueDateHandler) ListLogs(c *gin.Context) {
	logs, err := h.dueDateService.ListLogs(c.Request.Context(), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, logs))
}

// RequestExtension handles POST /due-date-logs
// @Summary      Request a due date extension
// @Description  The action owner asks for a later due date; the action is untouched until approval
// @Tags         due-date-logs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RequestExtensionRequest  true  "Extension Request"
// @Success      201      {object}  response.Response{data=model.DueDateLog}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /due-date-logs [post]
func (h *DueDateHandler) RequestExtension(c *gin.Context) {
	var req service.RequestExtensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	log, err := h.dueDateService.RequestExtension(c.Request.Context(), middleware.Viewer(c), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, log))
}

// ApproveLog handles POST /due-date-logs/:id/approve
// @Summary      Approve an extension request
// @Description  Grants the extension and moves the action's due date to the requested date
// @Tags         due-date-logs
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Due Date Log ID"
// @Success      200  {object}  response.Response{data=model.DueDateLog}
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /due-date-logs/{id}/approve [post]
func (h *DueDateHandler) ApproveLog(c *gin.Context) {
	log, err := h.dueDateService.ApproveLog(c.Request.Context(), middleware.Viewer(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, log))
}

// RejectLog handles POST /due-date-logs/:id/reject
// @Summary      Reject an extension request
// @Description  Denies the extension; the action keeps its current due date
// @Tags         due-date-logs
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Due Date Log ID"
// @Success      200  {object}  response.Response{data=model.DueDateLog}
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /due-date-logs/{id}/reject [post]
func (h *DueDateHandler) RejectLog(c *gin.Context) {
	log, err := h.dueDateService.RejectLog(c.Request.Context(), middleware.Viewer(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, log))
}
