package onboarding

import (
	"talentflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the wizard for the authenticated profile. idempotency
// guards the completion endpoint against client retries.
func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	idempotency gin.HandlerFunc,
) {
	wizard := r.Group("/onboarding")
	wizard.Use(middleware.RBACAuthorize(rbacService, "onboarding", "write"))
	{
		wizard.GET("", h.Get)
		wizard.POST("/next", middleware.RateLimitByUser(5, 10), h.Next)
		wizard.POST("/previous", middleware.RateLimitByUser(5, 10), h.Previous)
		wizard.POST("/complete",
			middleware.RateLimitByUser(0.5, 2),
			idempotency,
			h.Complete,
		)
	}
}
