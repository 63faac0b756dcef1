package checkin

import (
	"go-fieldtrack/internal/middleware"
	"go-fieldtrack/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts /checkin. POST and checkout enforce the employee role in the service.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, rbacSvc rbac.Service, rdb *redis.Client) {
	checkins := r.Group("/checkin")
	checkins.Use(authMW)
	{
		checkins.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(rdb),
			handler.CheckIn,
		)
		checkins.PUT("/checkout", middleware.RateLimitByUser(1, 5), handler.Checkout)
		checkins.GET("/active", middleware.RBACAuthorize(rbacSvc, rbac.ResourceCheckin, rbac.ActionRead), handler.GetActive)
		checkins.GET("/history", middleware.RBACAuthorize(rbacSvc, rbac.ResourceCheckin, rbac.ActionRead), handler.GetHistory)
	}
}
