package analytics

import (
	"talentflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
) {
	dashboards := r.Group("/analytics")
	dashboards.Use(middleware.RBACAuthorize(rbacService, "analytics", "read"))
	{
		dashboards.GET("/performance", h.Performance)
		dashboards.GET("/teams", h.Teams)
		dashboards.GET("/teams/report.pdf", middleware.RateLimitByUser(0.2, 2), h.TeamReport)
	}

	r.GET("/organization/hierarchy",
		middleware.RBACAuthorize(rbacService, "organization", "read"),
		h.Hierarchy,
	)
}
