// Package handler binds the HTTP surface to the services. Every mutation
// is gated twice: coarse role checks at the route via middleware, and the
// full capability table inside the service.
package handler

import (
	"cartool/internal/model"
	"cartool/pkg/apperr"
	"cartool/pkg/response"

	"github.com/gin-gonic/gin"
)

// allRoles lists every demo role for routes any signed-in user may call
var allRoles = []string{
	model.RoleLeadAuditor,
	model.RoleAuditor,
	model.RoleAuditee,
	model.RoleAPManager,
	model.RoleExecutive,
}

// fail maps an operation error onto the response envelope using the
// error taxonomy's status mapping
func fail(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	c.JSON(status, response.Error(status, err.Error()))
}
