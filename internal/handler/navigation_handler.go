package handler

import (
	"net/http"

	"cartool/internal/middleware"
	"cartool/internal/service"
	"cartool/pkg/response"

	"github.com/gin-gonic/gin"
)

type NavigationHandler struct {
	navService service.NavigationService
}

func NewNavigationHandler(navService service.NavigationService) *NavigationHandler {
	return &NavigationHandler{navService: navService}
}

func (h *NavigationHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/navigation")
	{
		group.GET("/menu", middleware.RequireRole(allRoles...), h.Menu)
	}
}

// Menu handles GET /navigation/menu
// @Summary      Navigation menu
// @Description  The ordered view list for the signed-in role, starting at the dashboard
// @Tags         navigation
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=object}
// @Router       /navigation/menu [get]
func (h *NavigationHandler) Menu(c *gin.Context) {
	viewer := middleware.Viewer(c)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"initial_view": service.InitialView,
		"menu":         h.navService.Menu(viewer.Role),
	}))
}
