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

type CARHandler struct {
	carService service.CARService
}

func NewCARHandler(carService service.CARService) *CARHandler {
	return &CARHandler{carService: carService}
}

func (h *CARHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/car-forms")
	{
		// Every role may list; auditees are scoped to their own forms by the service
		group.GET("", middleware.RequireRole(allRoles...), h.ListCARs)
		group.GET("/:id", middleware.RequireRole(allRoles...), h.GetCAR)
		group.POST("", middleware.RequireRole(model.RoleLeadAuditor, model.RoleAuditor), h.CreateCAR)
		group.POST("/:id/approve", middleware.RequireRole(model.RoleLeadAuditor), h.ApproveCAR)
		group.POST("/:id/close", middleware.RequireRole(model.RoleLeadAuditor, model.RoleAuditor), h.CloseCAR)
	}
}

// ListCARs handles GET /car-forms
// @Summary      List CAR forms
// @Description  Full list for auditors and managers, assigned-only for auditees
// @Tags         car-forms
// @Security     BearerAuth
// @Produce      json
// @Param        type    query     string  false  "Filter by type (NC or OFI)"
// @Param        status  query     string  false  "Filter by workflow status"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=response.PagedData}
// @Router       /car-forms [get]
func (h *CARHandler) ListCARs(c *gin.Context) {
	filter := service.CARFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}

	forms, err := h.carService.ListCARs(c.Request.Context(), middleware.Viewer(c), filter)
	if err != nil {
		fail(c, err)
		return
	}

	p := pagination.Parse(c)
	page, total := pagination.Slice(forms, p)
	c.JSON(http.StatusOK, response.Paged(http.StatusOK, page, total, p.Page, p.Limit))
}

// GetCAR handles GET /car-forms/:id
// @Summary      Get a CAR form
// @Tags         car-forms
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "CAR Form ID"
// @Success      200  {object}  response.Response{data=model.CARForm}
// @Failure      404  {object}  response.Response
// @Router       /car-forms/{id} [get]
func (h *CARHandler) GetCAR(c *gin.Context) {
	car, err := h.carService.GetCAR(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, car))
}

// CreateCAR handles POST /car-forms
// @Summary      Create a CAR form
// @Description  Raises an NC or OFI finding against an audit report
// @Tags         car-forms
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateCARRequest  true  "Create CAR Payload"
// @Success      201      {object}  response.Response{data=model.CARForm}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /car-forms [post]
func (h *CARHandler) CreateCAR(c *gin.Context) {
	var req service.CreateCARRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	car, err := h.carService.CreateCAR(c.Request.Context(), middleware.Viewer(c), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, car))
}

// ApproveCAR handles POST /car-forms/:id/approve
// @Summary      Approve a CAR form
// @Description  The lead auditor approves a responded CAR, sending it to verification
// @Tags         car-forms
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "CAR Form ID"
// @Success      200  {object}  response.Response{data=model.CARForm}
// @Failure      409  {object}  response.Response
// @Router       /car-forms/{id}/approve [post]
func (h *CARHandler) ApproveCAR(c *gin.Context) {
	car, err := h.carService.ApproveCAR(c.Request.Context(), middleware.Viewer(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, car))
}

type closeCARRequest struct {
	Passed bool `json:"passed"`
}

// CloseCAR handles POST /car-forms/:id/close
// @Summary      Close a CAR form
// @Description  Marks a verified CAR as passed or failed
// @Tags         car-forms
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string           true  "CAR Form ID"
// @Param        payload  body      closeCARRequest  true  "Verdict"
// @Success      200      {object}  response.Response{data=model.CARForm}
// @Failure      409      {object}  response.Response
// @Router       /car-forms/{id}/close [post]
func (h *CARHandler) CloseCAR(c *gin.Context) {
	var req closeCARRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	car, err := h.carService.CloseCAR(c.Request.Context(), middleware.Viewer(c), c.Param("id"), req.Passed)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, car))
}
