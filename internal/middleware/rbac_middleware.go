package middleware

import (
	"net/http"

	"go-fieldtrack/internal/domain"
	"go-fieldtrack/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by rbac.Service.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := CallerFrom(c)
		if caller.UserID == "" {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not authenticated")
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     caller.Role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.Abort(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Authorization check failed")
			return
		}

		if !allowed {
			response.Abort(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource")
			return
		}
		c.Next()
	}
}
