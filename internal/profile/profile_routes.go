package profile

import (
	"talentflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
) {
	profiles := r.Group("/profiles")
	{
		profiles.GET("", middleware.RBACAuthorize(rbacService, "profile", "read"), h.GetAll)
		profiles.GET("/me", h.Me)
		profiles.GET("/:id", middleware.RBACAuthorize(rbacService, "profile", "read"), h.GetById)
		profiles.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "profile", "update"),
			h.Update,
		)
		profiles.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "profile", "delete"),
			h.Deactivate,
		)
	}
}
