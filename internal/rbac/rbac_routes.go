package rbac

import (
	"talentflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	group := r.Group("/rbac")
	{
		group.POST("/enforce", middleware.RBACAuthorize(rbacService, "rbac", "read"), handler.Enforce)
		group.GET("/permissions", handler.MyPermissions)
	}
}
