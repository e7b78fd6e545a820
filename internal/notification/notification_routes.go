package notification

import (
	"talentflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", middleware.RBACAuthorize(rbacService, "notification", "read"), h.List)
		notifications.PATCH("/:id/read", middleware.RBACAuthorize(rbacService, "notification", "update"), h.MarkRead)
	}
}
