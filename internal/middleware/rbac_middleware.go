package middleware

import (
	"talentflow/internal/domain"
	"talentflow/internal/shared/apperror"
	"talentflow/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by anything that can answer an EnforceRequest.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.GetString("company_id")
		role := c.GetString("role")
		if companyID == "" || role == "" {
			response.AbortWithError(c, apperror.ErrUnauthorized.WithDetails("missing auth context"))
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			ProfileID: c.GetString("profile_id"),
			CompanyID: companyID,
			Role:      role,
			Resource:  resource,
			Action:    action,
		})
		if err != nil {
			response.AbortWithError(c, apperror.ErrInternal)
			return
		}
		if !allowed {
			response.AbortWithError(c, apperror.ErrForbidden.WithDetails(gin.H{"required": resource + ":" + action}))
			return
		}
		c.Next()
	}
}
