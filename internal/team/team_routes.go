package team

import (
	"talentflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
) {
	teams := r.Group("/teams")
	{
		teams.GET("", middleware.RBACAuthorize(rbacService, "team", "read"), h.GetAll)
		teams.GET("/:id", middleware.RBACAuthorize(rbacService, "team", "read"), h.GetById)
		teams.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "team", "create"),
			h.Create,
		)
	}
}
